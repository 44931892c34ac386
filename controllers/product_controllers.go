package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/warung-pos/models"
	"github.com/yeremiapane/warung-pos/services"
	"github.com/yeremiapane/warung-pos/utils"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// GetAllProducts lists the catalog ordered for display. Pass available=true
// to get only what the cashier can sell, or category=<name> to narrow down.
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	query := pc.DB.Order("sort_order ASC")
	if c.Query("available") == "true" {
		query = query.Where("is_available = ?", true)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All products", products)
}

// GetProductByID
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("product not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product detail", product)
}

// CreateProduct
func (pc *ProductController) CreateProduct(c *gin.Context) {
	type reqBody struct {
		Name        string `json:"name" binding:"required"`
		Price       int    `json:"price" binding:"required"`
		Category    string `json:"category" binding:"required"`
		IsAvailable *bool  `json:"is_available"`
		SortOrder   int    `json:"sort_order"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Price <= 0 {
		utils.RespondError(c, http.StatusBadRequest, services.ErrInvalidPrice)
		return
	}

	available := true
	if body.IsAvailable != nil {
		available = *body.IsAvailable
	}
	product := models.Product{
		Name:        body.Name,
		Price:       body.Price,
		Category:    body.Category,
		IsAvailable: available,
		SortOrder:   body.SortOrder,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := pc.DB.Create(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Product created", product)
}

// UpdateProduct
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("product not found"))
		return
	}

	type reqBody struct {
		Name        *string `json:"name"`
		Price       *int    `json:"price"`
		Category    *string `json:"category"`
		IsAvailable *bool   `json:"is_available"`
		SortOrder   *int    `json:"sort_order"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Price != nil && *body.Price <= 0 {
		utils.RespondError(c, http.StatusBadRequest, services.ErrInvalidPrice)
		return
	}

	if body.Name != nil {
		product.Name = *body.Name
	}
	if body.Price != nil {
		product.Price = *body.Price
	}
	if body.Category != nil {
		product.Category = *body.Category
	}
	if body.IsAvailable != nil {
		product.IsAvailable = *body.IsAvailable
	}
	if body.SortOrder != nil {
		product.SortOrder = *body.SortOrder
	}
	product.UpdatedAt = time.Now()

	if err := pc.DB.Save(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product updated", product)
}

// ToggleAvailability flips whether the cashier screen shows the product.
func (pc *ProductController) ToggleAvailability(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("product not found"))
		return
	}

	product.IsAvailable = !product.IsAvailable
	product.UpdatedAt = time.Now()
	if err := pc.DB.Save(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Availability updated", product)
}

// UpdatePrice changes just the unit price. Lines already in the cart keep
// the price they were added with.
func (pc *ProductController) UpdatePrice(c *gin.Context) {
	type reqBody struct {
		Price int `json:"price" binding:"required"`
	}

	id, _ := strconv.Atoi(c.Param("product_id"))

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Price <= 0 {
		utils.RespondError(c, http.StatusBadRequest, services.ErrInvalidPrice)
		return
	}

	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("product not found"))
		return
	}

	product.Price = body.Price
	product.UpdatedAt = time.Now()
	if err := pc.DB.Save(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Price updated", product)
}

// DeleteProduct
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("product_id"))

	if err := pc.DB.Delete(&models.Product{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product deleted", gin.H{"product_id": id})
}
