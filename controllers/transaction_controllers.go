package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/warung-pos/repositories"
	"github.com/yeremiapane/warung-pos/utils"
)

type TransactionController struct {
	Ledger *repositories.TransactionRepository
}

func NewTransactionController(ledger *repositories.TransactionRepository) *TransactionController {
	return &TransactionController{Ledger: ledger}
}

// GetAllTransactions returns the full ledger, most recent first.
func (tc *TransactionController) GetAllTransactions(c *gin.Context) {
	trxs, err := tc.Ledger.ListAll()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All transactions", trxs)
}

// GetTransactionByID
func (tc *TransactionController) GetTransactionByID(c *gin.Context) {
	trx, err := tc.Ledger.Get(c.Param("transaction_id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("transaction not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Transaction detail", trx)
}
