package controllers

import (
	"net/http"
	"time"

	"epoch-backend/services"
	"epoch-backend/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	Svc *services.AvailabilityService
}

func NewAvailabilityController(svc *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{Svc: svc}
}

// ListAvailability returns calendar rows from ?from= (default today) onward
// for the availability widget.
func (ctrl *AvailabilityController) ListAvailability(c *gin.Context) {
	from := c.Query("from")
	if from == "" {
		from = time.Now().Format("2006-01-02")
	}

	rows, err := ctrl.Svc.ListFrom(from)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}

// CheckDate answers available/remaining/notes for one date.
func (ctrl *AvailabilityController) CheckDate(c *gin.Context) {
	info, err := ctrl.Svc.Check(c.Param("date"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, info)
}
