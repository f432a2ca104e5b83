package controllers

import (
	"log"
	"strconv"

	"github.com/fragisir/foodWebsite/pkg/resp"
	"github.com/fragisir/foodWebsite/services"
	"github.com/fragisir/foodWebsite/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	CheckoutSvc *services.CheckoutService
	OrderSvc    *services.OrderService
	CartSvc     *services.CartService
}

func NewOrderController(co *services.CheckoutService, os *services.OrderService, cs *services.CartService) *OrderController {
	return &OrderController{CheckoutSvc: co, OrderSvc: os, CartSvc: cs}
}

// POST /orders/checkout
func (oc *OrderController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.CheckoutSvc.Checkout(uid, &req)
	if err != nil {
		fail(c, err)
		return
	}

	// submission succeeded: now (and only now) drop the cart
	if err := oc.CartSvc.Clear(uid); err != nil {
		log.Printf("clear cart after checkout: %v", err)
	}

	resp.Created(c, order)
}

// GET /orders/my
func (oc *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	orders, err := oc.OrderSvc.ListForUser(uid, 50)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id (owner or admin)
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := oc.OrderSvc.Detail(uid, role, uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT /orders/:id/cancel (owning customer, pending only)
func (oc *OrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := oc.OrderSvc.CustomerCancel(uid, uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}
