package controllers

import (
	"net/http"
	"time"

	"github.com/Calorties/calorties-api/middlewares"
	"github.com/Calorties/calorties-api/services"

	"github.com/gin-gonic/gin"
)

type CalorieController struct {
	calories  *services.CalorieService
	summaries *services.SummaryService
}

func NewCalorieController(calories *services.CalorieService, summaries *services.SummaryService) *CalorieController {
	return &CalorieController{calories: calories, summaries: summaries}
}

func (ctl *CalorieController) Record(c *gin.Context) {
	data, contentType, filename, err := readUpload(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no image provided"})
		return
	}

	account, _ := middlewares.CurrentAccount(c)
	calorieID, err := ctl.calories.Record(c.Request.Context(), account, data, contentType, filename)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "calorie consumption recorded successfully",
		"calorie_id": calorieID,
	})
}

// SummaryDay reports the intake for one date, defaulting to today.
func (ctl *CalorieController) SummaryDay(c *gin.Context) {
	var date time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	account, _ := middlewares.CurrentAccount(c)
	summary, err := ctl.summaries.DailySummary(c.Request.Context(), account.ID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SummaryWeek reports the zero-filled daily series for a date range,
// defaulting to Monday..Sunday of the current week.
func (ctl *CalorieController) SummaryWeek(c *gin.Context) {
	var start, end time.Time
	if raw := c.Query("start_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date, expected YYYY-MM-DD"})
			return
		}
		start = parsed
	}
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date, expected YYYY-MM-DD"})
			return
		}
		end = parsed
	}

	account, _ := middlewares.CurrentAccount(c)
	series, err := ctl.summaries.WeeklySummary(c.Request.Context(), account.ID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}
