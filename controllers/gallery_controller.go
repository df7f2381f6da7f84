package controllers

import (
	"net/http"

	"epoch-backend/middleware"
	"epoch-backend/services"
	"epoch-backend/utils"

	"github.com/gin-gonic/gin"
)

type GalleryController struct {
	GallerySvc *services.GalleryService
	StorageSvc *services.StorageService
}

func NewGalleryController(gallery *services.GalleryService, storage *services.StorageService) *GalleryController {
	return &GalleryController{GallerySvc: gallery, StorageSvc: storage}
}

// ListGallery returns approved photos, newest first. ?limit=20 serves the
// rotating hero background strip.
func (ctrl *GalleryController) ListGallery(c *gin.Context) {
	items, err := ctrl.GallerySvc.ListPublic(parseLimit(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

// UploadPhoto stores a multipart image and records it as a pending gallery
// item. Requires a signed-in user; the upload stays hidden until approved.
func (ctrl *GalleryController) UploadPhoto(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "sign in to upload photos")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "photo file is required")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not read uploaded file")
		return
	}
	defer src.Close()

	imageURL, err := ctrl.StorageSvc.SaveGalleryImage(
		src,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	item, err := ctrl.GallerySvc.Create(userID, imageURL, c.PostForm("caption"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, item)
}
