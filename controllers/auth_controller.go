package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/tripnest/bookingbackend/config"
	"github.com/tripnest/bookingbackend/dto"
	"github.com/tripnest/bookingbackend/httperr"
	"github.com/tripnest/bookingbackend/middleware"
	"github.com/tripnest/bookingbackend/models"
	"github.com/tripnest/bookingbackend/utils"
)

// fail hands the error to the boundary middleware and stops the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func sendToken(c *gin.Context, user models.User, statusCode int, cfg *config.Config) {
	token, err := utils.GenerateToken(user.ID.Hex(), cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		fail(c, err)
		return
	}

	utils.SetAuthCookie(c, token, cfg)
	c.JSON(statusCode, gin.H{
		"status": "success",
		"token":  token,
		"data":   gin.H{"user": user},
	})
}

// POST /api/user/register
func Register(users *mongo.Collection, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.RegisterDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			fail(c, httperr.BadRequest("invalid request body"))
			return
		}

		hash, err := utils.HashPassword(body.Password)
		if err != nil {
			fail(c, err)
			return
		}

		user := models.User{
			ID:           bson.NewObjectID(),
			Email:        utils.NormalizeEmail(body.Email),
			PasswordHash: hash,
			Firstname:    body.Firstname,
			Lastname:     body.Lastname,
			CreatedAt:    time.Now().UTC(),
		}

		if _, err := users.InsertOne(c.Request.Context(), user); err != nil {
			if utils.IsDuplicateKey(err) {
				fail(c, httperr.BadRequest("User already exists, please use another email to register"))
				return
			}
			fail(c, err)
			return
		}

		sendToken(c, user, http.StatusCreated, cfg)
	}
}

// POST /api/user/signin
func SignIn(users *mongo.Collection, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.SignInDTO
		if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" || body.Password == "" {
			fail(c, httperr.BadRequest("Please provide email and password."))
			return
		}

		var user models.User
		err := users.FindOne(c.Request.Context(), bson.M{"email": utils.NormalizeEmail(body.Email)}).Decode(&user)
		if err != nil || utils.CheckPassword(user.PasswordHash, body.Password) != nil {
			fail(c, httperr.Unauthorized("Incorrect email or password."))
			return
		}

		sendToken(c, user, http.StatusOK, cfg)
	}
}

// GET /api/user/validate-token
func ValidateToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": middleware.UserID(c)})
	}
}

// POST /api/user/logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.ClearAuthCookie(c)
		c.Status(http.StatusOK)
	}
}

// GET /api/user/me
func GetMe(users *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := bson.ObjectIDFromHex(middleware.UserID(c))
		if err != nil {
			fail(c, httperr.BadRequest("invalid identifier"))
			return
		}

		var user models.User
		if err := users.FindOne(c.Request.Context(), bson.M{"_id": userID}).Decode(&user); err != nil {
			fail(c, httperr.BadRequest("User not found"))
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
