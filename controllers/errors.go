package controllers

import (
	"errors"
	"net/http"

	"epoch-backend/services"
	"epoch-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service failures onto the error taxonomy:
// validation -> 400, bad credentials -> 401, missing row -> 404, losing the
// slot race -> 409, anything else -> 500. Nothing here is fatal.
func respondServiceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.JSONError(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrSlotUnavailable):
		utils.JSONError(c, http.StatusConflict, "this date is fully booked, please pick another")
	default:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}
