package controllers

import (
	"net/http"
	"strconv"

	"epoch-backend/services"
	"epoch-backend/utils"

	"github.com/gin-gonic/gin"
)

type approvalPayload struct {
	IsApproved *bool `json:"is_approved" binding:"required"`
}

type bookingStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

type availabilityUpsertPayload struct {
	IsAvailable *bool  `json:"is_available" binding:"required"`
	MaxBookings int    `json:"max_bookings" binding:"required"`
	Notes       string `json:"notes"`
}

// AdminController is the moderation dashboard: full-table listings plus
// approve/hide, delete, booking status and calendar editing.
type AdminController struct {
	GallerySvc      *services.GalleryService
	ReviewSvc       *services.ReviewService
	BookingSvc      *services.BookingService
	AvailabilitySvc *services.AvailabilityService
}

func NewAdminController(
	gallery *services.GalleryService,
	review *services.ReviewService,
	booking *services.BookingService,
	availability *services.AvailabilityService,
) *AdminController {
	return &AdminController{
		GallerySvc:      gallery,
		ReviewSvc:       review,
		BookingSvc:      booking,
		AvailabilitySvc: availability,
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// Summary returns the per-tab counts shown on dashboard entry.
func (ctrl *AdminController) Summary(c *gin.Context) {
	galleryCount, err := ctrl.GallerySvc.Count()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	reviewCount, err := ctrl.ReviewSvc.Count()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	bookingCount, err := ctrl.BookingSvc.Count()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"gallery":  galleryCount,
		"reviews":  reviewCount,
		"bookings": bookingCount,
	})
}

func (ctrl *AdminController) ListGallery(c *gin.Context) {
	items, err := ctrl.GallerySvc.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func (ctrl *AdminController) ListReviews(c *gin.Context) {
	reviews, err := ctrl.ReviewSvc.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reviews)
}

func (ctrl *AdminController) ListBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func (ctrl *AdminController) SetGalleryApproval(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payload approvalPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "is_approved is required")
		return
	}

	item, err := ctrl.GallerySvc.SetApproval(id, *payload.IsApproved)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}

func (ctrl *AdminController) SetReviewApproval(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payload approvalPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "is_approved is required")
		return
	}

	review, err := ctrl.ReviewSvc.SetApproval(id, *payload.IsApproved)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, review)
}

func (ctrl *AdminController) DeleteGalleryItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.GallerySvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

func (ctrl *AdminController) DeleteReview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.ReviewSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// UpdateBookingStatus moves a booking between pending, confirmed and
// cancelled; cancelling frees the day's slot.
func (ctrl *AdminController) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payload bookingStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	booking, err := ctrl.BookingSvc.UpdateStatus(id, payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// UpsertAvailability is the staff calendar editor.
func (ctrl *AdminController) UpsertAvailability(c *gin.Context) {
	var payload availabilityUpsertPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "is_available and max_bookings are required")
		return
	}

	day, err := ctrl.AvailabilitySvc.Upsert(c.Param("date"), *payload.IsAvailable, payload.MaxBookings, payload.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, day)
}
