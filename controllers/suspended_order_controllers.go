package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/warung-pos/services"
	"github.com/yeremiapane/warung-pos/utils"
)

type SuspendedOrderController struct {
	Orders *services.OrderService
}

func NewSuspendedOrderController(orders *services.OrderService) *SuspendedOrderController {
	return &SuspendedOrderController{Orders: orders}
}

// GetSuspendedOrders
func (sc *SuspendedOrderController) GetSuspendedOrders(c *gin.Context) {
	orders, err := sc.Orders.List()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Suspended orders", orders)
}

// SuspendOrder parks the active cart under an optional name and clears it.
func (sc *SuspendedOrderController) SuspendOrder(c *gin.Context) {
	type reqBody struct {
		Name string `json:"name"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil && c.Request.ContentLength > 0 {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := sc.Orders.Suspend(body.Name)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order suspended", order)
}

// ResumeOrder replaces the active cart with the stored snapshot.
func (sc *SuspendedOrderController) ResumeOrder(c *gin.Context) {
	order, err := sc.Orders.Resume(c.Param("order_id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order resumed", order)
}

// DeleteSuspendedOrder discards a parked order without restoring it.
func (sc *SuspendedOrderController) DeleteSuspendedOrder(c *gin.Context) {
	if err := sc.Orders.Discard(c.Param("order_id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Suspended order deleted", gin.H{"order_id": c.Param("order_id")})
}
