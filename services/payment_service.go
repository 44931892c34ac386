package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yeremiapane/warung-pos/models"
	"github.com/yeremiapane/warung-pos/repositories"
)

// PaymentService validates payment and converts the active cart into a
// permanent ledger entry. Settlement is all-or-nothing: the cart is cleared
// only after the ledger append commits.
type PaymentService struct {
	DB      *gorm.DB
	Ledger  *repositories.TransactionRepository
	Session *CartSession
}

func NewPaymentService(db *gorm.DB, ledger *repositories.TransactionRepository, session *CartSession) *PaymentService {
	return &PaymentService{DB: db, Ledger: ledger, Session: session}
}

// Settle settles the active cart with the given method. For TUNAI the cash
// received must cover the total and the change is computed exactly; QRIS is
// assumed to be confirmed visually out-of-band, so no numeric validation
// happens here.
func (s *PaymentService) Settle(method string, cashReceived *int) (*models.Transaction, error) {
	var settled *models.Transaction

	err := s.Session.WithCart(func(cart *models.Cart) error {
		if cart.IsEmpty() {
			return ErrEmptyCheckout
		}

		total := cart.Total()
		now := time.Now()

		trx := models.Transaction{
			ID:            uuid.NewString(),
			Timestamp:     now,
			TotalAmount:   total,
			PaymentMethod: method,
		}
		if method == models.PaymentMethodCash {
			if cashReceived == nil || *cashReceived < 0 || *cashReceived < total {
				return ErrInsufficientPayment
			}
			received := *cashReceived
			change := received - total
			trx.CashReceived = &received
			trx.ChangeAmount = &change
		}
		for _, line := range cart.Snapshot() {
			trx.Items = append(trx.Items, models.TransactionItem{
				ProductName: line.ProductName,
				Price:       line.Price,
				Qty:         line.Qty,
				Note:        line.Note,
			})
		}

		err := s.DB.Transaction(func(tx *gorm.DB) error {
			seq, err := s.Ledger.CountByDay(tx, now)
			if err != nil {
				return err
			}
			trx.InvoiceNumber = invoiceNumber(now, seq+1)
			_, err = s.Ledger.Append(tx, &trx)
			return err
		})
		if err != nil {
			return err
		}

		cart.Clear()
		settled = &trx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return settled, nil
}

// invoiceNumber builds W-YYYYMMDD-NNN where NNN is the day's settlement
// sequence, wrapping at 1000 to keep the three-digit shape.
func invoiceNumber(t time.Time, seq int64) string {
	return fmt.Sprintf("W-%s-%03d", t.Format("20060102"), seq%1000)
}
