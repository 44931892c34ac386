package services

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/warung-pos/models"
)

// BackupDocument is the full-store export file. Import requires the products
// and transactions arrays; settings may be absent in older files.
type BackupDocument struct {
	Version      string               `json:"version"`
	ExportDate   time.Time            `json:"exportDate"`
	Settings     []models.Setting     `json:"settings"`
	Products     []models.Product     `json:"products"`
	Transactions []models.Transaction `json:"transactions"`
}

// BackupService handles whole-store export, restore and reset. Restore and
// reset replace every collection inside one transaction, so a half-restored
// state is never visible.
type BackupService struct {
	DB *gorm.DB
}

func NewBackupService(db *gorm.DB) *BackupService {
	return &BackupService{DB: db}
}

func (s *BackupService) Export() (*BackupDocument, error) {
	doc := &BackupDocument{
		Version:      "1.0",
		ExportDate:   time.Now(),
		Settings:     []models.Setting{},
		Products:     []models.Product{},
		Transactions: []models.Transaction{},
	}
	if err := s.DB.Find(&doc.Settings).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Order("sort_order ASC").Find(&doc.Products).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Preload("Items").Order("timestamp DESC").Find(&doc.Transactions).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

// Import validates the backup file and atomically replaces the settings,
// product and transaction collections with its contents. A file missing the
// required arrays is rejected before anything is touched.
func (s *BackupService) Import(raw []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ErrImportFormatInvalid
	}

	var doc BackupDocument
	required := map[string]interface{}{
		"products":     &doc.Products,
		"transactions": &doc.Transactions,
	}
	for key, dst := range required {
		field, ok := probe[key]
		if !ok {
			return ErrImportFormatInvalid
		}
		if err := json.Unmarshal(field, dst); err != nil {
			return ErrImportFormatInvalid
		}
	}
	if field, ok := probe["settings"]; ok {
		settings, err := decodeSettings(field)
		if err != nil {
			return ErrImportFormatInvalid
		}
		doc.Settings = settings
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := clearAll(tx); err != nil {
			return err
		}
		for i := range doc.Settings {
			if err := tx.Create(&doc.Settings[i]).Error; err != nil {
				return err
			}
		}
		for i := range doc.Products {
			if err := tx.Create(&doc.Products[i]).Error; err != nil {
				return err
			}
		}
		for i := range doc.Transactions {
			if err := tx.Create(&doc.Transactions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// decodeSettings accepts the export shape where a setting value may be a
// string, number or boolean. Non-string values keep their JSON text; the
// engine treats settings as opaque strings either way.
func decodeSettings(raw json.RawMessage) ([]models.Setting, error) {
	var entries []struct {
		Key   string          `json:"key"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	settings := make([]models.Setting, 0, len(entries))
	for _, entry := range entries {
		settings = append(settings, models.Setting{
			Key:   entry.Key,
			Value: settingValueString(entry.Value),
		})
	}
	return settings, nil
}

func settingValueString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	return string(raw)
}

// Reset wipes every collection in one transaction.
func (s *BackupService) Reset() error {
	return s.DB.Transaction(clearAll)
}

func clearAll(tx *gorm.DB) error {
	for _, model := range []interface{}{
		&models.TransactionItem{},
		&models.Transaction{},
		&models.Product{},
		&models.Setting{},
	} {
		if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
