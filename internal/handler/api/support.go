package api

import (
	"net/http"

	resdto "adspace-booking/internal/handler/dto/response"
	"adspace-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SupportHandler struct {
	supportQueries queries.SupportQueries
	bookingQueries queries.BookingQueries
}

func NewSupportHandler(supportQueries queries.SupportQueries, bookingQueries queries.BookingQueries) *SupportHandler {
	return &SupportHandler{
		supportQueries: supportQueries,
		bookingQueries: bookingQueries,
	}
}

// @Summary List supports
// @Tags supports
// @Produce json
// @Success 200 {array} resdto.SupportResponse
// @Router /supports [get]
func (h *SupportHandler) ListSupports(c *gin.Context) {
	views, err := h.supportQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSupportViews(views))
}

// @Summary Get support
// @Tags supports
// @Produce json
// @Param id path string true "Support ID"
// @Success 200 {object} resdto.SupportResponse
// @Failure 404 {object} map[string]string
// @Router /supports/{id} [get]
func (h *SupportHandler) GetSupport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid support ID",
		})
		return
	}

	view, err := h.supportQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Support not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSupportView(view))
}

// @Summary List bookings of a support
// @Tags supports
// @Produce json
// @Param id path string true "Support ID"
// @Success 200 {array} resdto.BookingResponse
// @Router /supports/{id}/bookings [get]
func (h *SupportHandler) GetSupportBookings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid support ID",
		})
		return
	}

	views, err := h.bookingQueries.ListBySupport(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
