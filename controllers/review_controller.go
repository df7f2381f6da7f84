package controllers

import (
	"net/http"
	"strconv"

	"epoch-backend/middleware"
	"epoch-backend/services"
	"epoch-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateReviewPayload struct {
	AuthorName string `json:"author_name" binding:"required"`
	Content    string `json:"content" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
}

type ReviewController struct {
	ReviewSvc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{ReviewSvc: svc}
}

func parseLimit(c *gin.Context) int {
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

// ListReviews returns approved reviews, newest first. ?limit=6 serves the
// testimonial highlights on the landing page.
func (ctrl *ReviewController) ListReviews(c *gin.Context) {
	reviews, err := ctrl.ReviewSvc.ListPublic(parseLimit(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reviews)
}

// CreateReview accepts a visitor review. Auth is optional; when present the
// author is stamped on the row for audit purposes.
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	var payload CreateReviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	var userID *uint
	if id, ok := middleware.UserID(c); ok {
		userID = &id
	}

	review, err := ctrl.ReviewSvc.Create(payload.AuthorName, payload.Content, payload.Rating, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, review)
}
