package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/warung-pos/models"
	"github.com/yeremiapane/warung-pos/services"
	"github.com/yeremiapane/warung-pos/utils"
)

type CartController struct {
	DB      *gorm.DB
	Session *services.CartSession
}

func NewCartController(db *gorm.DB, session *services.CartSession) *CartController {
	return &CartController{DB: db, Session: session}
}

// GetCart
func (cc *CartController) GetCart(c *gin.Context) {
	lines := cc.Session.Lines()
	utils.RespondJSON(c, http.StatusOK, "Active cart", gin.H{
		"lines": lines,
		"total": cc.Session.Total(),
	})
}

// AddItem adds one unit of a catalog product to the cart, snapshotting its
// current price.
func (cc *CartController) AddItem(c *gin.Context) {
	type reqBody struct {
		ProductID uint   `json:"product_id" binding:"required"`
		Note      string `json:"note"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var product models.Product
	if err := cc.DB.First(&product, body.ProductID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("product not found"))
		return
	}
	if !product.IsAvailable {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("product is not available"))
		return
	}

	cc.Session.AddLine(product.Name, product.Price, body.Note)
	utils.RespondJSON(c, http.StatusOK, "Item added to cart", gin.H{
		"lines": cc.Session.Lines(),
		"total": cc.Session.Total(),
	})
}

// AdjustQuantity changes a line's quantity by delta; the line disappears
// when the quantity reaches zero.
func (cc *CartController) AdjustQuantity(c *gin.Context) {
	type reqBody struct {
		Delta int `json:"delta" binding:"required"`
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid line index"))
		return
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !cc.Session.AdjustQuantity(index, body.Delta) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("line index out of range"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Quantity updated", gin.H{
		"lines": cc.Session.Lines(),
		"total": cc.Session.Total(),
	})
}

// RemoveLine
func (cc *CartController) RemoveLine(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid line index"))
		return
	}

	if !cc.Session.RemoveLine(index) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("line index out of range"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Line removed", gin.H{
		"lines": cc.Session.Lines(),
		"total": cc.Session.Total(),
	})
}

// ClearCart
func (cc *CartController) ClearCart(c *gin.Context) {
	cc.Session.Clear()
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", nil)
}
