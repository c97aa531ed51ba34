package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-healthnav/advisor"
	"go-healthnav/bridge"
	"go-healthnav/notify"
	"go-healthnav/session"
	"go-healthnav/types"
)

// LocalAsker answers session submissions from the in-process advisor,
// for deployments with no separate recommendation backend.
type LocalAsker struct {
	Advisor *advisor.Advisor
}

func (l LocalAsker) Ask(ctx context.Context, question string, severity types.Severity, incident *types.Incident) (*bridge.Reply, error) {
	message, recs := l.Advisor.Advise(ctx, question, severity, incident)
	return &bridge.Reply{Text: message, Recommendations: recs}, nil
}

func sessionState(s *session.Session, toasts *notify.Center) gin.H {
	return gin.H{
		"messages":        s.Messages(),
		"severity":        s.Severity(),
		"incident":        s.Incident(),
		"recommendations": s.Recommendations(),
		"toasts":          toasts.Active(),
	}
}

// GetSession handles GET /api/session.
func GetSession(c *gin.Context, s *session.Session, toasts *notify.Center) {
	c.JSON(http.StatusOK, sessionState(s, toasts))
}

// PostSessionMessage handles POST /api/session/message: the chat-panel
// submit. Empty text is a no-op; a pending request gets 409.
func PostSessionMessage(c *gin.Context, s *session.Session, toasts *notify.Center) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := s.Submit(c.Request.Context(), req.Text); err != nil {
		if errors.Is(err, session.ErrBusy) {
			c.JSON(http.StatusConflict, gin.H{"error": "a request is already pending"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	c.JSON(http.StatusOK, sessionState(s, toasts))
}

// PostSessionSeverity handles POST /api/session/severity.
func PostSessionSeverity(c *gin.Context, s *session.Session, toasts *notify.Center) {
	var req struct {
		Severity string `json:"severity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	s.SetSeverity(types.ParseSeverity(req.Severity))
	c.JSON(http.StatusOK, sessionState(s, toasts))
}

// PostSessionIncident handles POST /api/session/incident: the map-click
// path. The new marker replaces any previous one.
func PostSessionIncident(c *gin.Context, s *session.Session, toasts *notify.Center) {
	var req struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Lat == nil || req.Lng == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng are required"})
		return
	}

	s.SetIncident(*req.Lat, *req.Lng)
	c.JSON(http.StatusOK, sessionState(s, toasts))
}
