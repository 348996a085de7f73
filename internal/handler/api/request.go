package api

import (
	"errors"
	"net/http"

	reqdto "adspace-booking/internal/handler/dto/request"
	resdto "adspace-booking/internal/handler/dto/response"
	"adspace-booking/internal/handler/middleware"
	"adspace-booking/internal/usecase/commands"
	"adspace-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RequestHandler struct {
	requestCommands commands.RequestCommands
	requestQueries  queries.RequestQueries
}

func NewRequestHandler(requestCommands commands.RequestCommands, requestQueries queries.RequestQueries) *RequestHandler {
	return &RequestHandler{
		requestCommands: requestCommands,
		requestQueries:  requestQueries,
	}
}

// @Summary Create booking request
// @Description Propose renting a support for a run of whole months; the price is snapshotted at creation
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Requester-ID header string true "Requester identity"
// @Param request body reqdto.CreateRequestRequest true "Booking request"
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	requesterID, ok := middleware.GetRequesterID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateRequestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	startDate, err := req.ParseStartDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid start date, expected YYYY-MM-DD",
		})
		return
	}

	view, err := h.requestCommands.Create(c.Request.Context(), commands.CreateRequestParams{
		SupportID:   req.SupportID,
		RequesterID: requesterID,
		StartDate:   startDate,
		Months:      req.Months,
		Message:     req.GetMessage(),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSupportNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Support not found",
			})
		case errors.Is(err, commands.ErrSupportInactive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Support is not bookable",
			})
		case errors.Is(err, commands.ErrInvalidMonths):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Months must be at least 1",
			})
		case errors.Is(err, commands.ErrPastStartDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Start date cannot be in the past",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary Get booking request
// @Tags requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 404 {object} map[string]string
// @Router /requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID",
		})
		return
	}

	view, err := h.requestQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary List own booking requests
// @Tags requests
// @Produce json
// @Param X-Requester-ID header string true "Requester identity"
// @Success 200 {array} resdto.RequestListResponse
// @Router /requests [get]
func (h *RequestHandler) GetRequests(c *gin.Context) {
	requesterID, ok := middleware.GetRequesterID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.requestQueries.ListByRequester(c.Request.Context(), requesterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	out := make([]*resdto.RequestListResponse, len(items))
	for i, item := range items {
		out[i] = resdto.FromRequestListItem(item)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Mark request as viewed
// @Description Owner-side read receipt; viewing an already viewed request is a no-op
// @Tags requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /requests/{id}/viewed [post]
func (h *RequestHandler) MarkViewed(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID",
		})
		return
	}

	if err := h.requestCommands.MarkViewed(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Request not found",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Request is already decided",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Decide a booking request
// @Description Accept converts the request into a reserved booking after re-validating overlap under the support lock; reject closes it
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body reqdto.DecideRequestRequest true "Decision"
// @Success 200 {object} resdto.BookingResponse
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /requests/{id}/decision [post]
func (h *RequestHandler) DecideRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID",
		})
		return
	}

	var req reqdto.DecideRequestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.requestCommands.Decide(c.Request.Context(), id, commands.Decision(req.Decision))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Request not found",
			})
		case errors.Is(err, commands.ErrBookingConflict):
			var conflictErr *commands.ConflictError
			detail := gin.H{}
			if errors.As(err, &conflictErr) {
				detail["bookingNumber"] = conflictErr.Conflict.Number
				detail["bookingStart"] = conflictErr.Conflict.Period.Start().Format("2006-01-02")
				detail["bookingEnd"] = conflictErr.Conflict.Period.End().Format("2006-01-02")
			}
			c.JSON(http.StatusConflict, gin.H{
				"error":  "Requested range conflicts with an existing booking",
				"detail": detail,
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Request is already decided",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	if result.Booking == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(result.Booking))
}

func (h *RequestHandler) respondQueryError(c *gin.Context, err error) {
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Request not found",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
