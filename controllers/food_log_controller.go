package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// GET /food_log — the current user's consumption log
func GetFoodLog(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	entries, err := services.GetUserFoodLog(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"food_log": entries})
}

type AddFoodLogInput struct {
	FoodConsumed string `json:"food_consumed" binding:"required"`
}

// POST /food_log — log a food by name for the current user
func AddFoodLog(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input AddFoodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.AddFoodLog(userID, input.FoodConsumed)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GET /food_log/delete/:id — the entry up for deletion, for the
// confirmation step
func ConfirmDeleteFoodLog(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food log id"})
		return
	}

	entry, err := services.GetFoodLogEntry(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// POST /food_log/delete/:id — delete by id; a missing id is a no-op
func DeleteFoodLog(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food log id"})
		return
	}

	if err := services.DeleteFoodLog(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
