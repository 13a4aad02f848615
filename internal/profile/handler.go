package profile

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

// GetProfile godoc
// @Summary      Trainer profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  TrainerProfile
// @Failure      500  {object}  api.ErrorResponse
// @Router       /profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	p, err := h.svc.GetProfile(c.Request.Context())
	if err != nil {
		logger.WithError(err).Error("failed to fetch profile")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error"})
		return
	}

	if p == nil {
		// No profile saved yet.
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdateProfile godoc
// @Summary      Update trainer profile
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        name   formData  string  true   "Trainer name"
// @Param        bio    formData  string  false  "Short bio"
// @Param        photo  formData  file    false  "Profile photo"
// @Success      200  {object}  TrainerProfile
// @Failure      400  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	req := UpdateProfileRequest{
		Name: c.PostForm("name"),
		Bio:  c.PostForm("bio"),
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "name is required"})
		return
	}

	photo, err := c.FormFile("photo")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid photo upload"})
		return
	}

	p, err := h.svc.UpdateProfile(c.Request.Context(), req, photo)
	if err != nil {
		logger.WithError(err).Error("failed to update profile")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error"})
		return
	}

	c.JSON(http.StatusOK, p)
}
