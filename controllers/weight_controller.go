package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// GET /weight_log — the current user's weight log
func GetWeightLog(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	entries, err := services.GetUserWeightLog(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"weight_log": entries})
}

type AddWeightInput struct {
	Weight float64 `json:"weight" binding:"required,gt=0"`
	Date   string  `json:"date" binding:"required"` // YYYY-MM-DD
}

// POST /weight_log — record a weight measurement
func AddWeight(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input AddWeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entryDate, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	entry, err := services.AddWeight(userID, input.Weight, entryDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GET /weight_log/delete/:id — the entry up for deletion, for the
// confirmation step
func ConfirmDeleteWeight(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid weight entry id"})
		return
	}

	entry, err := services.GetWeightEntry(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// POST /weight_log/delete/:id — delete by id; a missing id is a no-op
func DeleteWeight(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid weight entry id"})
		return
	}

	if err := services.DeleteWeight(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
