package controllers

import (
	"strconv"

	"github.com/fragisir/foodWebsite/entity"
	"github.com/fragisir/foodWebsite/pkg/resp"
	"github.com/fragisir/foodWebsite/repository"
	"github.com/fragisir/foodWebsite/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Svc     *services.RestaurantService
	FoodSvc *services.FoodService
}

func NewRestaurantController(svc *services.RestaurantService, foodSvc *services.FoodService) *RestaurantController {
	return &RestaurantController{Svc: svc, FoodSvc: foodSvc}
}

// GET /restaurants?cuisine=&search=&featured=&sort=
func (rc *RestaurantController) List(c *gin.Context) {
	f := repository.RestaurantFilter{
		Cuisine:  c.Query("cuisine"),
		Search:   c.Query("search"),
		Featured: c.Query("featured") == "true",
		Sort:     c.Query("sort"),
	}
	rests, err := rc.Svc.List(f)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(rests), "items": rests})
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	rest, err := rc.Svc.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /restaurants/:id/foods
func (rc *RestaurantController) Foods(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	foods, err := rc.FoodSvc.ListByRestaurant(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(foods), "items": foods})
}

// POST /admin/restaurants
func (rc *RestaurantController) Create(c *gin.Context) {
	var rest entity.Restaurant
	if err := c.ShouldBindJSON(&rest); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := rc.Svc.Create(&rest); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, rest)
}

// PUT /admin/restaurants/:id
func (rc *RestaurantController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	rest, err := rc.Svc.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	if err := c.ShouldBindJSON(rest); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest.ID = uint(id)
	if err := rc.Svc.Update(rest); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rest)
}

// DELETE /admin/restaurants/:id
func (rc *RestaurantController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := rc.Svc.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{})
}
