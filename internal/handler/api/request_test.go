//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"adspace-booking/internal/handler/api"
	"adspace-booking/internal/usecase/commands"
	"adspace-booking/internal/usecase/queries"
	commandsmock "adspace-booking/tests/mock/commands"
	queriesmock "adspace-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRequestCommands
	mockQueries  *queriesmock.MockRequestQueries
	handler      *api.RequestHandler
}

func (s *RequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRequestQueries(s.mockCtrl)
	s.handler = api.NewRequestHandler(s.mockCommands, s.mockQueries)

	// Mock identity middleware for testing
	requesterMiddleware := func(c *gin.Context) {
		raw := c.GetHeader("X-Requester-ID")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("requester_id", id)
		c.Next()
	}

	s.router.POST("/requests", requesterMiddleware, s.handler.CreateRequest)
	s.router.GET("/requests", requesterMiddleware, s.handler.GetRequests)
	s.router.GET("/requests/:id", s.handler.GetRequest)
	s.router.POST("/requests/:id/viewed", s.handler.MarkViewed)
	s.router.POST("/requests/:id/decision", s.handler.DecideRequest)
}

func (s *RequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}

func (s *RequestHandlerTestSuite) doJSON(method, url string, body map[string]any, requesterID string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if requesterID != "" {
		req.Header.Set("X-Requester-ID", requesterID)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func sampleRequestView(id uuid.UUID) *queries.RequestView {
	return &queries.RequestView{
		ID:          id,
		SupportID:   uuid.New(),
		SupportCode: "SPC-001",
		SupportName: "North bridge banner",
		RequesterID: uuid.New(),
		Months:      3,
		MonthlyRate: decimal.RequireFromString("1200.00"),
		Total:       decimal.RequireFromString("4140.00"),
		Status:      "pending",
	}
}

// ================================================================================
// CreateRequest
// ================================================================================

func (s *RequestHandlerTestSuite) TestCreateRequest() {
	requesterID := uuid.New()
	view := sampleRequestView(uuid.New())
	body := map[string]any{
		"support_id": view.SupportID.String(),
		"start_date": "2026-09-01",
		"months":     3,
	}

	s.Run("created", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(view, nil)

		rec := s.doJSON(http.MethodPost, "/requests", body, requesterID.String())
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), view.ID.String())
	})

	s.Run("missing identity header", func() {
		rec := s.doJSON(http.MethodPost, "/requests", body, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("malformed start date", func() {
		bad := map[string]any{
			"support_id": view.SupportID.String(),
			"start_date": "01/09/2026",
			"months":     3,
		}
		rec := s.doJSON(http.MethodPost, "/requests", bad, requesterID.String())
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("months below one rejected by binding", func() {
		bad := map[string]any{
			"support_id": view.SupportID.String(),
			"start_date": "2026-09-01",
			"months":     0,
		}
		rec := s.doJSON(http.MethodPost, "/requests", bad, requesterID.String())
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("support not found", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrSupportNotFound)

		rec := s.doJSON(http.MethodPost, "/requests", body, requesterID.String())
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("inactive support", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrSupportInactive)

		rec := s.doJSON(http.MethodPost, "/requests", body, requesterID.String())
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("past start date", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrPastStartDate)

		rec := s.doJSON(http.MethodPost, "/requests", body, requesterID.String())
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// GetRequest
// ================================================================================

func (s *RequestHandlerTestSuite) TestGetRequest() {
	id := uuid.New()

	s.Run("found", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), id).
			Return(sampleRequestView(id), nil)

		rec := s.doJSON(http.MethodGet, "/requests/"+id.String(), nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "SPC-001")
	})

	s.Run("invalid id", func() {
		rec := s.doJSON(http.MethodGet, "/requests/not-a-uuid", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// MarkViewed
// ================================================================================

func (s *RequestHandlerTestSuite) TestMarkViewed() {
	id := uuid.New()

	s.Run("marked", func() {
		s.mockCommands.EXPECT().
			MarkViewed(gomock.Any(), id).
			Return(nil)

		rec := s.doJSON(http.MethodPost, "/requests/"+id.String()+"/viewed", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("not found", func() {
		s.mockCommands.EXPECT().
			MarkViewed(gomock.Any(), id).
			Return(commands.ErrRequestNotFound)

		rec := s.doJSON(http.MethodPost, "/requests/"+id.String()+"/viewed", nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("already decided", func() {
		s.mockCommands.EXPECT().
			MarkViewed(gomock.Any(), id).
			Return(commands.ErrInvalidTransition)

		rec := s.doJSON(http.MethodPost, "/requests/"+id.String()+"/viewed", nil, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

// ================================================================================
// DecideRequest
// ================================================================================

func (s *RequestHandlerTestSuite) TestDecideRequest() {
	id := uuid.New()

	s.Run("accept returns the booking", func() {
		bookingView := &queries.BookingView{
			ID:     uuid.New(),
			Number: "BK-1A2B3C4D",
			Status: "reserved",
		}
		s.mockCommands.EXPECT().
			Decide(gomock.Any(), id, commands.DecisionAccept).
			Return(&commands.DecideResult{Booking: bookingView}, nil)

		rec := s.doJSON(http.MethodPost, "/requests/"+id.String()+"/decision",
			map[string]any{"decision": "accept"}, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "BK-1A2B3C4D")
	})

	s.Run("reject returns no content", func() {
		s.mockCommands.EXPECT().
			Decide(gomock.Any(), id, commands.DecisionReject).
			Return(&commands.DecideResult{}, nil)

		rec := s.doJSON(http.MethodPost, "/requests/"+id.String()+"/decision",
			map[string]any{"decision": "reject"}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("unknown decision rejected by binding", func() {
		rec := s.doJSON(http.MethodPost, "/requests/"+id.String()+"/decision",
			map[string]any{"decision": "maybe"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("conflict", func() {
		s.mockCommands.EXPECT().
			Decide(gomock.Any(), id, commands.DecisionAccept).
			Return(nil, commands.ErrBookingConflict)

		rec := s.doJSON(http.MethodPost, "/requests/"+id.String()+"/decision",
			map[string]any{"decision": "accept"}, "")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("already decided", func() {
		s.mockCommands.EXPECT().
			Decide(gomock.Any(), id, commands.DecisionReject).
			Return(nil, commands.ErrInvalidTransition)

		rec := s.doJSON(http.MethodPost, "/requests/"+id.String()+"/decision",
			map[string]any{"decision": "reject"}, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("not found", func() {
		s.mockCommands.EXPECT().
			Decide(gomock.Any(), id, commands.DecisionAccept).
			Return(nil, commands.ErrRequestNotFound)

		rec := s.doJSON(http.MethodPost, "/requests/"+id.String()+"/decision",
			map[string]any{"decision": "accept"}, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
