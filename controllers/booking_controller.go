package controllers

import (
	"errors"
	"net/http"

	"epoch-backend/services"
	"epoch-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateBookingPayload struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Phone    string   `json:"phone" binding:"required"`
	Date     string   `json:"date" binding:"required"`
	Time     string   `json:"time" binding:"required"`
	Guests   int      `json:"guests"`
	Occasion string   `json:"occasion" binding:"required"`
	Location string   `json:"location"`
	AddOns   []string `json:"add_ons"`
	Notes    string   `json:"notes"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// CreateBooking persists a pending booking with a reserved slot and returns
// the prefilled WhatsApp link. On a backend failure the link is still
// returned so the guest's request is not silently lost; on a lost slot race
// there is no link, the guest must pick another date.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	req := services.BookingRequest{
		Name:     payload.Name,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Date:     payload.Date,
		Time:     payload.Time,
		Guests:   payload.Guests,
		Occasion: payload.Occasion,
		Location: payload.Location,
		AddOns:   payload.AddOns,
		Notes:    payload.Notes,
	}

	booking, link, err := ctrl.BookingSvc.CreateBooking(req)
	if err != nil {
		if errors.Is(err, services.ErrSlotUnavailable) || services.IsValidation(err) {
			respondServiceError(c, err)
			return
		}
		// persistence failed: hand back the manual-contact link
		utils.JSONErrorExtra(c, http.StatusBadGateway,
			"we could not save your booking, please contact us directly on WhatsApp",
			gin.H{"whatsapp_link": ctrl.BookingSvc.FallbackLink(req)})
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"booking":       booking,
		"whatsapp_link": link,
	})
}
