package booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

// GetAvailability godoc
// @Summary      Availability calendar
// @Description  Returns one {date, booked} entry per day of the inclusive range.
// @Tags         bookings
// @Produce      json
// @Param        from  query     string  true  "Range start (YYYY-MM-DD)"
// @Param        to    query     string  true  "Range end (YYYY-MM-DD)"
// @Success      200   {array}   AvailabilityDay
// @Failure      400   {object}  api.ErrorResponse
// @Failure      500   {object}  api.ErrorResponse
// @Router       /availability [get]
func (h *Handler) GetAvailability(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing from/to params"})
		return
	}

	days, err := h.svc.GetAvailability(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		logger.WithError(err).Error("failed to compute availability")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error"})
		return
	}

	c.JSON(http.StatusOK, days)
}

// CreateBooking godoc
// @Summary      Create booking
// @Description  Admits a booking if its date range conflicts with no existing one. Accepts multipart form with a JSON "data" field and an optional "outline" file.
// @Tags         bookings
// @Accept       multipart/form-data
// @Produce      json
// @Param        data     formData  string  true   "JSON-encoded booking fields"
// @Param        outline  formData  file    false  "Course outline document"
// @Success      201  {object}  api.MessageResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /book [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	data := c.PostForm("data")
	if data == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing data field"})
		return
	}

	var req CreateBookingRequest
	if err := json.Unmarshal([]byte(data), &req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking data"})
		return
	}

	if errs := api.ValidateStruct(req); len(errs) > 0 {
		api.RespondWithValidationErrors(c, errs)
		return
	}

	outline, err := c.FormFile("outline")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid outline upload"})
		return
	}

	b, err := h.svc.CreateBooking(c.Request.Context(), req, outline)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrDateConflict):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Dates already booked"})
		default:
			logger.WithError(err).Error("failed to create booking")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created",
		"booking": b,
	})
}

// GetBooking godoc
// @Summary      Booking details
// @Tags         bookings
// @Produce      json
// @Param        id   path      int  true  "Booking ID"
// @Success      200  {object}  Booking
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /bookings/{id} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	b, err := h.svc.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
			return
		}
		logger.WithError(err).Error("failed to fetch booking")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error"})
		return
	}

	c.JSON(http.StatusOK, b)
}
