package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-healthnav/geocode"
)

// manualPlacementHint mirrors the geolocation-failure toast: the user
// is told to click the map instead. An existing marker is never moved
// by a failed lookup.
const manualPlacementHint = "Could not resolve a location. Click the map to place the incident manually."

// ExtractFunc finds location entity names in free text.
type ExtractFunc func(ctx context.Context, text string) ([]string, error)

// ResolveFunc geocodes one location name.
type ResolveFunc func(ctx context.Context, address string) (*geocode.Place, error)

// LocateIncident handles POST /api/incident/locate: pull a location
// entity out of the complaint text and geocode it to a marker position.
func LocateIncident(c *gin.Context, extract ExtractFunc, resolve ResolveFunc) {
	if extract == nil || resolve == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "location assist not configured", "hint": manualPlacementHint})
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	ctx := c.Request.Context()
	locations, err := extract(ctx, req.Text)
	if err != nil || len(locations) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no location found in text", "hint": manualPlacementHint})
		return
	}

	place, err := resolve(ctx, locations[0])
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "could not geocode location", "hint": manualPlacementHint})
		return
	}

	c.JSON(http.StatusOK, place)
}
