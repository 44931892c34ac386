package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yeremiapane/warung-pos/models"
)

// TransactionRepository is the append-only ledger of settled orders. The
// engine never updates or deletes a row here; bulk replacement happens only
// through the backup/reset path.
type TransactionRepository struct {
	DB *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

// Append persists a new ledger entry and returns its id. An id is assigned
// when absent; an existing id is never overwritten (a duplicate fails the
// insert). Pass tx to take part in an enclosing gorm transaction.
func (r *TransactionRepository) Append(tx *gorm.DB, trx *models.Transaction) (string, error) {
	if tx == nil {
		tx = r.DB
	}
	if trx.ID == "" {
		trx.ID = uuid.NewString()
	}
	if err := tx.Create(trx).Error; err != nil {
		return "", err
	}
	return trx.ID, nil
}

func (r *TransactionRepository) Get(id string) (*models.Transaction, error) {
	var trx models.Transaction
	if err := r.DB.Preload("Items").First(&trx, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &trx, nil
}

// ListAll returns every transaction, most recent first.
func (r *TransactionRepository) ListAll() ([]models.Transaction, error) {
	var trxs []models.Transaction
	err := r.DB.Preload("Items").Order("timestamp DESC").Find(&trxs).Error
	return trxs, err
}

// ListByRange returns transactions with start <= timestamp <= end, most
// recent first.
func (r *TransactionRepository) ListByRange(start, end time.Time) ([]models.Transaction, error) {
	var trxs []models.Transaction
	err := r.DB.Preload("Items").
		Where("timestamp >= ? AND timestamp <= ?", start, end).
		Order("timestamp DESC").
		Find(&trxs).Error
	return trxs, err
}

// CountByDay counts the ledger entries settled on the same local day as t.
// Used for the per-day invoice sequence.
func (r *TransactionRepository) CountByDay(tx *gorm.DB, t time.Time) (int64, error) {
	if tx == nil {
		tx = r.DB
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 1)

	var count int64
	err := tx.Model(&models.Transaction{}).
		Where("timestamp >= ? AND timestamp < ?", start, end).
		Count(&count).Error
	return count, err
}
