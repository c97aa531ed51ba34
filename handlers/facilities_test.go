package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-healthnav/types"
)

func facilityRouter(store HospitalStore) *gin.Engine {
	r := gin.New()
	r.GET("/api/facilities", func(c *gin.Context) { Facilities(c, store) })
	r.GET("/api/facility/:id", func(c *gin.Context) { Facility(c, store) })
	return r
}

func TestFacilitiesList(t *testing.T) {
	r := facilityRouter(&stubStore{hospitals: testHospitals})

	req := httptest.NewRequest(http.MethodGet, "/api/facilities", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Facilities []types.Facility `json:"facilities"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	if assert.Len(t, resp.Facilities, 2) {
		assert.Equal(t, "City General Hospital", resp.Facilities[0].Name)
		// Popup tags are capped.
		assert.Len(t, resp.Facilities[0].Tags, maxMarkerTags)
	}
}

func TestFacilityByID(t *testing.T) {
	r := facilityRouter(&stubStore{hospitals: testHospitals})

	req := httptest.NewRequest(http.MethodGet, "/api/facility/hosp_002", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bayview Medical Center")
}

func TestFacilityNotFound(t *testing.T) {
	r := facilityRouter(&stubStore{hospitals: testHospitals})

	req := httptest.NewRequest(http.MethodGet, "/api/facility/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFacilitiesStoreError(t *testing.T) {
	r := facilityRouter(&stubStore{err: errors.New("down")})

	req := httptest.NewRequest(http.MethodGet, "/api/facilities", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
