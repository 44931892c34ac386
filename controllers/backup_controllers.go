package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/warung-pos/services"
	"github.com/yeremiapane/warung-pos/utils"
)

type BackupController struct {
	Backups *services.BackupService
}

func NewBackupController(backups *services.BackupService) *BackupController {
	return &BackupController{Backups: backups}
}

// ExportData returns the whole store as one backup document.
func (bc *BackupController) ExportData(c *gin.Context) {
	doc, err := bc.Backups.Export()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Backup export", doc)
}

// ImportData restores a backup document, replacing every collection
// atomically. Invalid files are rejected before anything is touched.
func (bc *BackupController) ImportData(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := bc.Backups.Import(raw); err != nil {
		if errors.Is(err, services.ErrImportFormatInvalid) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Backup imported", nil)
}

// ResetData wipes settings, products and transactions in one shot.
func (bc *BackupController) ResetData(c *gin.Context) {
	if err := bc.Backups.Reset(); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All data reset", nil)
}
