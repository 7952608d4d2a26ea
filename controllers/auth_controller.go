package controllers

import (
	"net/http"

	"vhotelok-backend/middleware"
	"vhotelok-backend/services"
	"vhotelok-backend/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register handles POST /auth/register.
func (ctl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	if _, err := ctl.auth.Register(req.FirstName, req.LastName, req.Username, req.Email, req.Password); err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c)
}

// Login handles POST /auth/login. The token is returned in the body and
// set as an HttpOnly cookie.
func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	token, err := ctl.auth.Login(req.Email, req.Password)
	if err != nil {
		utils.Error(c, err)
		return
	}

	maxAge := int(ctl.auth.TokenTTL().Seconds())
	c.SetCookie(middleware.AccessTokenCookie, token, maxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

// Me handles GET /auth/me.
func (ctl *AuthController) Me(c *gin.Context) {
	user, err := ctl.auth.Me(middleware.UserID(c))
	if err != nil {
		utils.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout handles POST /auth/logout by dropping the cookie.
func (ctl *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
	utils.OK(c)
}
