// controllers/review_controller.go
package controllers

import (
	"strconv"

	"github.com/fragisir/foodWebsite/pkg/resp"
	"github.com/fragisir/foodWebsite/services"
	"github.com/fragisir/foodWebsite/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct{ Svc *services.ReviewService }

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: svc}
}

// POST /reviews
func (rc *ReviewController) Create(c *gin.Context) {
	var req struct {
		RestaurantID uint   `json:"restaurantId" binding:"required"`
		Rating       int    `json:"rating" binding:"required"`
		Comment      string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rev, err := rc.Svc.Create(utils.CurrentUserID(c), req.RestaurantID, req.Rating, req.Comment)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, rev)
}

// GET /reviews/:restaurantId
func (rc *ReviewController) ListForRestaurant(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("restaurantId"))
	reviews, err := rc.Svc.ListForRestaurant(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(reviews), "items": reviews})
}
