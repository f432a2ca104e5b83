package controllers

import (
	"strconv"

	"github.com/fragisir/foodWebsite/pkg/resp"
	"github.com/fragisir/foodWebsite/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Svc      *services.AdminService
	OrderSvc *services.OrderService
}

func NewAdminController(svc *services.AdminService, orderSvc *services.OrderService) *AdminController {
	return &AdminController{Svc: svc, OrderSvc: orderSvc}
}

// GET /admin/analytics
func (ac *AdminController) Analytics(c *gin.Context) {
	out, err := ac.Svc.Analytics()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/users
func (ac *AdminController) Users(c *gin.Context) {
	users, err := ac.Svc.ListUsers()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(users), "items": users})
}

// DELETE /admin/users/:id
func (ac *AdminController) DeleteUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ac.Svc.DeleteUser(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "user deleted"})
}

// PUT /admin/users/:id/toggle
func (ac *AdminController) ToggleUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	user, err := ac.Svc.ToggleUser(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, user)
}

// GET /admin/orders
func (ac *AdminController) Orders(c *gin.Context) {
	orders, err := ac.OrderSvc.ListAll()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(orders), "items": orders})
}

// PUT /admin/orders/:id/status
func (ac *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ac.OrderSvc.AdminSetStatus(uint(id), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}
