package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/warung-pos/models"
	"github.com/yeremiapane/warung-pos/services"
	"github.com/yeremiapane/warung-pos/utils"
)

type PaymentController struct {
	DB       *gorm.DB
	Payments *services.PaymentService
}

func NewPaymentController(db *gorm.DB, payments *services.PaymentService) *PaymentController {
	return &PaymentController{DB: db, Payments: payments}
}

// Checkout settles the active cart. TUNAI needs cash_received; QRIS is
// confirmed visually before this endpoint is called, so it settles directly.
func (pc *PaymentController) Checkout(c *gin.Context) {
	type reqBody struct {
		PaymentMethod string `json:"payment_method" binding:"required,oneof=TUNAI QRIS"`
		CashReceived  *int   `json:"cash_received"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	trx, err := pc.Payments.Settle(body.PaymentMethod, body.CashReceived)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCheckout), errors.Is(err, services.ErrInsufficientPayment):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Payment success", gin.H{
		"transaction": trx,
		"receipt":     pc.buildReceipt(trx),
	})
}

// buildReceipt bundles the settled transaction with the store identity
// strings so the terminal can print a struk straight from the response.
func (pc *PaymentController) buildReceipt(trx *models.Transaction) gin.H {
	receipt := gin.H{
		"store_name":      pc.settingOrDefault(models.SettingStoreName, "WarungPOS"),
		"footer_struk":    pc.settingOrDefault(models.SettingFooterStruk, "Terima kasih atas kunjungan Anda!"),
		"invoice_number":  trx.InvoiceNumber,
		"total_formatted": utils.FormatCurrency(trx.TotalAmount),
	}
	if trx.ChangeAmount != nil {
		receipt["change_formatted"] = utils.FormatCurrency(*trx.ChangeAmount)
	}
	return receipt
}

func (pc *PaymentController) settingOrDefault(key, fallback string) string {
	var setting models.Setting
	if err := pc.DB.First(&setting, "key = ?", key).Error; err != nil {
		return fallback
	}
	return setting.Value
}
