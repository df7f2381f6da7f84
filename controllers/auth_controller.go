package controllers

import (
	"net/http"
	"time"

	"epoch-backend/middleware"
	"epoch-backend/services"
	"epoch-backend/utils"

	"github.com/gin-gonic/gin"
)

type registerPayload struct {
	FullName string `json:"full_name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	AuthSvc   *services.AuthService
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthController(svc *services.AuthService, secret string, ttl time.Duration) *AuthController {
	return &AuthController{AuthSvc: svc, JWTSecret: secret, TokenTTL: ttl}
}

func (ctrl *AuthController) respondWithToken(c *gin.Context, code int, userID uint, isAdmin bool, fullName, email string) {
	token, err := utils.GenerateToken(userID, isAdmin, ctrl.JWTSecret, ctrl.TokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate token")
		return
	}
	utils.JSONSuccess(c, code, gin.H{
		"token": token,
		"user": gin.H{
			"id":        userID,
			"full_name": fullName,
			"email":     email,
			"is_admin":  isAdmin,
		},
	})
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	user, err := ctrl.AuthSvc.Register(payload.FullName, payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	ctrl.respondWithToken(c, http.StatusCreated, user.ID, user.IsAdmin, user.FullName, user.Email)
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	user, err := ctrl.AuthSvc.Login(payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	ctrl.respondWithToken(c, http.StatusOK, user.ID, user.IsAdmin, user.FullName, user.Email)
}

// Me returns the session identity the views thread through their lifecycle.
func (ctrl *AuthController) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not signed in")
		return
	}

	user, err := ctrl.AuthSvc.GetByID(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
