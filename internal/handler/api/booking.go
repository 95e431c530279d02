package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	reqdto "table-booking/internal/handler/dto/request"
	resdto "table-booking/internal/handler/dto/response"
	"table-booking/internal/handler/httperr"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	msgMissingRequiredFields = "Missing required fields"
	msgInvalidRequestFormat  = "Invalid request format"
	msgInternalError         = "Internal server error"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary List bookings
// @Description List every booking in creation order
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	views := h.bookingQueries.List(c.Request.Context())

	response, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Create booking
// @Description Book an existing table. Double booking is allowed and booking_time is stored verbatim.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortWithBindError(c, err)
		return
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrTableNotFound):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError)
		}
		return
	}

	response, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// An empty body, a null document or a top-level array carries none of the
// fields, so each counts as missing fields rather than a malformed request.
func (h *BookingHandler) abortWithBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) || errors.Is(err, io.EOF) || isArrayDocument(err) {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrMissingRequiredFields), msgMissingRequiredFields)
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidRequestFormat), msgInvalidRequestFormat)
}

func isArrayDocument(err error) bool {
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr) && typeErr.Value == "array" && typeErr.Field == ""
}
