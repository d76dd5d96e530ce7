package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// GET / — the default route, one page of the food catalog
func ListFoods(c *gin.Context) {
	foodSvc := services.NewFoodService(services.S3ImageStore{})
	out, err := foodSvc.ListFoods(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /food/:id
func GetFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	foodSvc := services.NewFoodService(services.S3ImageStore{})
	food, err := foodSvc.GetFood(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, food)
}

type AddFoodInput struct {
	FoodName    string   `json:"food_name" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Description string   `json:"description"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Images      []string `json:"images"`
}

// POST /food/add — food plus up to two optional image slots
func AddFood(c *gin.Context) {
	var input AddFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	foodSvc := services.NewFoodService(services.S3ImageStore{})
	food, err := foodSvc.CreateFood(services.CreateFoodInput{
		Name:        input.FoodName,
		Category:    input.Category,
		Description: input.Description,
		Calories:    input.Calories,
		Protein:     input.Protein,
		Carbs:       input.Carbs,
		Fat:         input.Fat,
		Images:      input.Images,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "food": food})
}
