package gallery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/satyensinh/trainer-booking-backend/internal/api"
	"github.com/satyensinh/trainer-booking-backend/internal/logger"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// ListImages godoc
// @Summary      Gallery images
// @Description  Returns all gallery images, newest first.
// @Tags         gallery
// @Produce      json
// @Success      200  {array}   GalleryImage
// @Failure      500  {object}  api.ErrorResponse
// @Router       /gallery [get]
func (h *Handler) ListImages(c *gin.Context) {
	images, err := h.svc.ListImages(c.Request.Context())
	if err != nil {
		logger.WithError(err).Error("failed to fetch gallery")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error"})
		return
	}

	if images == nil {
		images = []GalleryImage{}
	}
	c.JSON(http.StatusOK, images)
}

// AddImage godoc
// @Summary      Upload gallery image
// @Tags         gallery
// @Accept       multipart/form-data
// @Produce      json
// @Param        caption  formData  string  false  "Caption"
// @Param        image    formData  file    true   "Image file"
// @Success      201  {object}  GalleryImage
// @Failure      400  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /gallery [post]
func (h *Handler) AddImage(c *gin.Context) {
	image, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "image file is required"})
		return
	}

	img, err := h.svc.AddImage(c.Request.Context(), c.PostForm("caption"), image)
	if err != nil {
		if errors.Is(err, ErrMissingImage) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		logger.WithError(err).Error("failed to store gallery image")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error"})
		return
	}

	c.JSON(http.StatusCreated, img)
}
