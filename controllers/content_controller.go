package controllers

import (
	"net/http"

	"epoch-backend/models"
	"epoch-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetContent serves the static marketing catalog: pricing, add-ons,
// occasions, time slots, package features and themes for the landing page.
func GetContent(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"base_price":       models.BasePrice,
		"add_ons":          models.AddOns,
		"occasions":        models.Occasions,
		"time_slots":       models.TimeSlots,
		"package_features": models.PackageFeatures,
		"themes":           models.Themes,
		"whatsapp_number":  models.WhatsAppNumber,
		"guest_limits": gin.H{
			"min":     models.MinGuests,
			"max":     models.MaxGuests,
			"default": models.DefaultGuests,
		},
	})
}
