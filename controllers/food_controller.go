package controllers

import (
	"net/http"
	"time"

	"github.com/Calorties/calorties-api/middlewares"
	"github.com/Calorties/calorties-api/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	foods     *services.FoodService
	summaries *services.SummaryService
}

func NewFoodController(foods *services.FoodService, summaries *services.SummaryService) *FoodController {
	return &FoodController{foods: foods, summaries: summaries}
}

func (ctl *FoodController) List(c *gin.Context) {
	foods, err := ctl.foods.List(c.Request.Context(), c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": foods})
}

// Daily returns the per-food breakdown of what the user ate on a date.
func (ctl *FoodController) Daily(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	account, _ := middlewares.CurrentAccount(c)
	summary, err := ctl.summaries.DailySummary(c.Request.Context(), account.ID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"food_details":  summary.FoodDetails,
		"total_by_type": summary.TotalByType,
	})
}
