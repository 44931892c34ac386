package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/warung-pos/models"
	"github.com/yeremiapane/warung-pos/services"
	"github.com/yeremiapane/warung-pos/utils"
)

// Categories are derived strings over the product table, not rows of their
// own. Renaming rewrites every product in the category; deleting is blocked
// while any product still references the name.
type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

// GetCategories
func (cc *CategoryController) GetCategories(c *gin.Context) {
	var categories []string
	err := cc.DB.Model(&models.Product{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All categories", categories)
}

// RenameCategory
func (cc *CategoryController) RenameCategory(c *gin.Context) {
	type reqBody struct {
		From string `json:"from" binding:"required"`
		To   string `json:"to" binding:"required"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	err := cc.DB.Model(&models.Product{}).
		Where("category = ?", body.From).
		Update("category", body.To).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category renamed", gin.H{"from": body.From, "to": body.To})
}

// DeleteCategory refuses while products still reference the category.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	name := c.Param("category")

	var count int64
	if err := cc.DB.Model(&models.Product{}).Where("category = ?", name).Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if count > 0 {
		utils.RespondError(c, http.StatusConflict, services.ErrCategoryInUse)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{"category": name})
}
