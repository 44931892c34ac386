package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/warung-pos/models"
	"github.com/yeremiapane/warung-pos/repositories"
)

func setupPaymentTest(t *testing.T) (*PaymentService, *repositories.TransactionRepository) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Transaction{}, &models.TransactionItem{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	ledger := repositories.NewTransactionRepository(db)
	return NewPaymentService(db, ledger, NewCartSession()), ledger
}

func intPtr(v int) *int { return &v }

func TestSettleCashSuccess(t *testing.T) {
	svc, ledger := setupPaymentTest(t)
	svc.Session.AddLine("Nasi Goreng", 15000, "")
	svc.Session.AddLine("Nasi Goreng", 15000, "")
	svc.Session.AddLine("Ayam Bakar", 20000, "")

	trx, err := svc.Settle(models.PaymentMethodCash, intPtr(100000))
	assert.NoError(t, err)
	assert.Equal(t, 50000, trx.TotalAmount)
	assert.Equal(t, models.PaymentMethodCash, trx.PaymentMethod)
	assert.Equal(t, 100000, *trx.CashReceived)
	assert.Equal(t, 50000, *trx.ChangeAmount)
	assert.Len(t, trx.Items, 2)

	// change_amount == cash_received - total_amount exactly
	assert.Equal(t, *trx.CashReceived-trx.TotalAmount, *trx.ChangeAmount)

	// total equals the sum over the embedded items
	sum := 0
	for _, item := range trx.Items {
		sum += item.Price * item.Qty
	}
	assert.Equal(t, trx.TotalAmount, sum)

	// cart cleared, one ledger entry persisted
	assert.Empty(t, svc.Session.Lines())
	all, err := ledger.ListAll()
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSettleCashExactAmount(t *testing.T) {
	svc, _ := setupPaymentTest(t)
	svc.Session.AddLine("Bakso", 15000, "")

	trx, err := svc.Settle(models.PaymentMethodCash, intPtr(15000))
	assert.NoError(t, err)
	assert.Equal(t, 0, *trx.ChangeAmount)
}

func TestSettleCashInsufficient(t *testing.T) {
	svc, ledger := setupPaymentTest(t)
	svc.Session.AddLine("Nasi Goreng Spesial", 20000, "")
	svc.Session.AddLine("Capcay", 18000, "")
	svc.Session.AddLine("Es Campur", 10000, "")
	svc.Session.AddLine("Kopi Hitam", 2000, "")

	_, err := svc.Settle(models.PaymentMethodCash, intPtr(30000))
	assert.ErrorIs(t, err, ErrInsufficientPayment)

	// no ledger write, cart untouched
	all, err := ledger.ListAll()
	assert.NoError(t, err)
	assert.Empty(t, all)
	assert.Len(t, svc.Session.Lines(), 4)
	assert.Equal(t, 50000, svc.Session.Total())
}

func TestSettleCashMissingAmount(t *testing.T) {
	svc, _ := setupPaymentTest(t)
	svc.Session.AddLine("Es Teh Manis", 4000, "")

	_, err := svc.Settle(models.PaymentMethodCash, nil)
	assert.ErrorIs(t, err, ErrInsufficientPayment)

	_, err = svc.Settle(models.PaymentMethodCash, intPtr(-1))
	assert.ErrorIs(t, err, ErrInsufficientPayment)
}

func TestSettleQRIS(t *testing.T) {
	svc, ledger := setupPaymentTest(t)
	svc.Session.AddLine("Lele Goreng", 15000, "pedas")

	trx, err := svc.Settle(models.PaymentMethodQRIS, nil)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentMethodQRIS, trx.PaymentMethod)
	assert.Nil(t, trx.CashReceived)
	assert.Nil(t, trx.ChangeAmount)
	assert.Equal(t, "pedas", trx.Items[0].Note)

	all, err := ledger.ListAll()
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Empty(t, svc.Session.Lines())
}

func TestSettleEmptyCheckout(t *testing.T) {
	svc, ledger := setupPaymentTest(t)

	_, err := svc.Settle(models.PaymentMethodCash, intPtr(100000))
	assert.ErrorIs(t, err, ErrEmptyCheckout)

	all, err := ledger.ListAll()
	assert.NoError(t, err)
	assert.Empty(t, all)
}

func TestLedgerAppendOnly(t *testing.T) {
	svc, ledger := setupPaymentTest(t)

	prev := 0
	for i := 0; i < 3; i++ {
		svc.Session.AddLine("Teh Hangat", 3000, "")
		_, err := svc.Settle(models.PaymentMethodQRIS, nil)
		assert.NoError(t, err)

		all, err := ledger.ListAll()
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, len(all), prev)
		prev = len(all)
	}
	assert.Equal(t, 3, prev)
}

func TestInvoiceNumberSequence(t *testing.T) {
	svc, _ := setupPaymentTest(t)
	datePart := time.Now().Format("20060102")

	svc.Session.AddLine("Es Jeruk", 6000, "")
	first, err := svc.Settle(models.PaymentMethodQRIS, nil)
	assert.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("W-%s-001", datePart), first.InvoiceNumber)

	svc.Session.AddLine("Es Jeruk", 6000, "")
	second, err := svc.Settle(models.PaymentMethodQRIS, nil)
	assert.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("W-%s-002", datePart), second.InvoiceNumber)
}

func TestInvoiceNumberFormat(t *testing.T) {
	ts := time.Date(2025, 1, 15, 10, 30, 0, 0, time.Local)
	assert.Equal(t, "W-20250115-042", invoiceNumber(ts, 42))
	assert.Equal(t, "W-20250115-999", invoiceNumber(ts, 999))
	// wraps to keep three digits
	assert.Equal(t, "W-20250115-000", invoiceNumber(ts, 1000))
}
