package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Calorties/calorties-api/middlewares"
	"github.com/Calorties/calorties-api/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

type CreateUserBody struct {
	Birthdate   string  `json:"birthdate" binding:"required"` // YYYY-MM-DD
	Gender      string  `json:"gender"`
	TinggiBadan float64 `json:"tinggi_badan"`
	BeratBadan  float64 `json:"berat_badan"`
}

func (ctl *UserController) Create(c *gin.Context) {
	var body CreateUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	birthdate, err := time.Parse("2006-01-02", body.Birthdate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid birthdate, expected YYYY-MM-DD"})
		return
	}

	account, _ := middlewares.CurrentAccount(c)
	user, err := ctl.users.CreateUser(c.Request.Context(), account, services.CreateUserInput{
		Birthdate:   birthdate,
		Gender:      body.Gender,
		TinggiBadan: body.TinggiBadan,
		BeratBadan:  body.BeratBadan,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "user created successfully", "user_id": user.ID})
}

type UpdateUserBody struct {
	Nama        string  `json:"nama"`
	Email       string  `json:"email"`
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	Birthdate   string  `json:"birthdate"`
	Gender      string  `json:"gender"`
	TinggiBadan float64 `json:"tinggi_badan"`
	BeratBadan  float64 `json:"berat_badan"`
}

func (ctl *UserController) Update(c *gin.Context) {
	var body UpdateUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	in := services.UpdateUserInput{
		Nama:        body.Nama,
		Email:       body.Email,
		Username:    body.Username,
		Password:    body.Password,
		Gender:      body.Gender,
		TinggiBadan: body.TinggiBadan,
		BeratBadan:  body.BeratBadan,
	}
	if body.Birthdate != "" {
		birthdate, err := time.Parse("2006-01-02", body.Birthdate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid birthdate, expected YYYY-MM-DD"})
			return
		}
		in.Birthdate = birthdate
	}

	account, _ := middlewares.CurrentAccount(c)
	if err := ctl.users.UpdateUser(c.Request.Context(), account, uint(targetID), in); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated successfully"})
}

// UploadProfileImage handles both the create and update variants of the
// profile-image endpoint; they behave identically.
func (ctl *UserController) UploadProfileImage(c *gin.Context) {
	data, contentType, filename, err := readUpload(c, "profile_image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no profile image provided"})
		return
	}

	account, _ := middlewares.CurrentAccount(c)
	url, err := ctl.users.SetProfileImage(c.Request.Context(), account, data, contentType, filename)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile image uploaded successfully", "image_url": url})
}
