package middleware

import (
	"net/http"

	"adspace-booking/internal/handler/httperr"
	"adspace-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requesterIDKey = "requester_id"

// RequireRequester resolves caller identity from the X-Requester-ID
// header. Identity management lives outside this service; the gateway in
// front of it authenticates and injects the header.
func RequireRequester() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Requester-ID")
		if raw == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing X-Requester-ID header"), "Missing requester identity", nil)
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid requester identity", nil)
			return
		}
		c.Set(requesterIDKey, id)
		c.Next()
	}
}

func GetRequesterID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(requesterIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
