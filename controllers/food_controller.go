package controllers

import (
	"strconv"

	"github.com/fragisir/foodWebsite/entity"
	"github.com/fragisir/foodWebsite/pkg/resp"
	"github.com/fragisir/foodWebsite/repository"
	"github.com/fragisir/foodWebsite/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct{ Svc *services.FoodService }

func NewFoodController(svc *services.FoodService) *FoodController { return &FoodController{Svc: svc} }

// GET /foods?restaurant=&category=&search=&vegetarian=&vegan=&popular=&sort=
func (fc *FoodController) List(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Query("restaurant"))
	f := repository.FoodFilter{
		RestaurantID: uint(restID),
		Category:     c.Query("category"),
		Search:       c.Query("search"),
		Vegetarian:   c.Query("vegetarian") == "true",
		Vegan:        c.Query("vegan") == "true",
		Popular:      c.Query("popular") == "true",
		Sort:         c.Query("sort"),
	}
	foods, err := fc.Svc.List(f)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(foods), "items": foods})
}

// GET /foods/:id
func (fc *FoodController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	food, err := fc.Svc.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, food)
}

// POST /admin/foods
func (fc *FoodController) Create(c *gin.Context) {
	var food entity.FoodItem
	if err := c.ShouldBindJSON(&food); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := fc.Svc.Create(&food); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, food)
}

// PUT /admin/foods/:id
func (fc *FoodController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	food, err := fc.Svc.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	if err := c.ShouldBindJSON(food); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	food.ID = uint(id)
	if err := fc.Svc.Update(food); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, food)
}

// DELETE /admin/foods/:id
func (fc *FoodController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := fc.Svc.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{})
}
