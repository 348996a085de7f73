package api

import (
	"net/http"

	reqdto "adspace-booking/internal/handler/dto/request"
	resdto "adspace-booking/internal/handler/dto/response"
	"adspace-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Pre-validate booking candidates
// @Description Checks a batch of (support code, date range) pairs against the committed schedule; purely advisory
// @Tags availability
// @Accept json
// @Produce json
// @Param request body reqdto.CheckAvailabilityRequest true "Candidates"
// @Success 200 {object} resdto.CheckAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /availability/check [post]
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	items, err := h.availabilityQueries.ValidateBatch(c.Request.Context(), req.ToQuery())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromConflictItems(items))
}
