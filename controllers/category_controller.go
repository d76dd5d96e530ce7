package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// GET /categories
func ListCategories(c *gin.Context) {
	categories, err := services.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GET /categories/:name — one page of the named category's foods
func CategoryDetails(c *gin.Context) {
	foodSvc := services.NewFoodService(services.S3ImageStore{})
	out, err := foodSvc.ListFoodsByCategory(c.Param("name"), c.Query("page"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
