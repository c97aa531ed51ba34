package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"go-healthnav/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubStore satisfies both advisor.Store and HospitalStore.
type stubStore struct {
	hospitals []types.Hospital
	err       error
}

func (s *stubStore) List(_ context.Context) ([]types.Hospital, error) {
	return s.hospitals, s.err
}

func (s *stubStore) Get(_ context.Context, id string) (*types.Hospital, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.hospitals {
		if s.hospitals[i].ID == id {
			return &s.hospitals[i], nil
		}
	}
	return nil, nil
}

var testHospitals = []types.Hospital{
	{ID: "hosp_001", Name: "City General Hospital", ETA: "6 min", Tags: []string{"Emergency", "Cardiology", "Surgery", "Pediatrics", "ICU"}, Lat: 40.7128, Lng: -74.0060, Type: "hospital"},
	{ID: "hosp_002", Name: "Bayview Medical Center", ETA: "9 min", Tags: []string{"Stroke Center", "Neurology"}, Lat: 40.7589, Lng: -73.9851, Type: "hospital"},
}
