package models

import "time"

const (
	PaymentMethodCash = "TUNAI"
	PaymentMethodQRIS = "QRIS"
)

// Transaction is one settled order in the append-only ledger. Items carry
// their own copies of name/price/qty so later catalog edits never change a
// settled transaction.
type Transaction struct {
	ID            string            `gorm:"primaryKey;type:varchar(36)" json:"id"`
	InvoiceNumber string            `gorm:"type:varchar(32);not null;index" json:"invoice_number"`
	Timestamp     time.Time         `gorm:"not null;index" json:"timestamp"`
	TotalAmount   int               `gorm:"not null" json:"total_amount"`
	PaymentMethod string            `gorm:"type:varchar(10);not null" json:"payment_method"`
	CashReceived  *int              `json:"cash_received,omitempty"`
	ChangeAmount  *int              `json:"change_amount,omitempty"`
	Items         []TransactionItem `gorm:"foreignKey:TransactionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
}

type TransactionItem struct {
	ID            uint   `gorm:"primaryKey" json:"-"`
	TransactionID string `gorm:"type:varchar(36);not null;index" json:"-"`
	ProductName   string `gorm:"type:varchar(255);not null" json:"product_name"`
	Price         int    `gorm:"not null" json:"price"`
	Qty           int    `gorm:"not null" json:"qty"`
	Note          string `gorm:"type:text" json:"note"`
}
