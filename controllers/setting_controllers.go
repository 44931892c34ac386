package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/warung-pos/models"
	"github.com/yeremiapane/warung-pos/utils"
)

type SettingController struct {
	DB *gorm.DB
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db}
}

// GetAllSettings returns every setting as a key/value map.
func (sc *SettingController) GetAllSettings(c *gin.Context) {
	var settings []models.Setting
	if err := sc.DB.Find(&settings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	result := make(map[string]string, len(settings))
	for _, s := range settings {
		result[s.Key] = s.Value
	}
	utils.RespondJSON(c, http.StatusOK, "All settings", result)
}

// GetSetting
func (sc *SettingController) GetSetting(c *gin.Context) {
	var setting models.Setting
	if err := sc.DB.First(&setting, "key = ?", c.Param("key")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("setting not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Setting detail", setting)
}

// SetSetting upserts one key.
func (sc *SettingController) SetSetting(c *gin.Context) {
	type reqBody struct {
		Key   string `json:"key" binding:"required"`
		Value string `json:"value" binding:"required"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	setting := models.Setting{Key: body.Key, Value: body.Value}
	err := sc.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Setting saved", setting)
}
