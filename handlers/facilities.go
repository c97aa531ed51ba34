package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-healthnav/types"
)

// maxMarkerTags keeps popups short on the map panel.
const maxMarkerTags = 3

// HospitalStore is the minimal store interface the map routes need.
type HospitalStore interface {
	List(ctx context.Context) ([]types.Hospital, error)
	Get(ctx context.Context, id string) (*types.Hospital, error)
}

// Facilities handles GET /api/facilities: every hospital as a static
// map marker. Markers are placed once at page init and never change.
func Facilities(c *gin.Context, store HospitalStore) {
	hospitals, err := store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load facilities"})
		return
	}

	facilities := make([]types.Facility, 0, len(hospitals))
	for _, h := range hospitals {
		facilities = append(facilities, toFacility(h))
	}
	c.JSON(http.StatusOK, gin.H{"facilities": facilities})
}

// Facility handles GET /api/facility/:id.
func Facility(c *gin.Context, store HospitalStore) {
	id := c.Param("id")
	h, err := store.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load facility"})
		return
	}
	if h == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
		return
	}
	c.JSON(http.StatusOK, toFacility(*h))
}

func toFacility(h types.Hospital) types.Facility {
	tags := h.Tags
	if len(tags) > maxMarkerTags {
		tags = tags[:maxMarkerTags]
	}
	kind := h.Type
	if kind == "" {
		kind = "hospital"
	}
	return types.Facility{
		ID:   h.ID,
		Name: h.Name,
		Lat:  h.Lat,
		Lng:  h.Lng,
		Tags: tags,
		Type: kind,
	}
}
