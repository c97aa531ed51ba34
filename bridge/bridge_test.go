package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-healthnav/types"
)

func TestAskVariantRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req types.AskRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "chest pain", req.Question)
		json.NewEncoder(w).Encode(types.AskResponse{Answer: "Call 911 now."})
	}))
	defer srv.Close()

	c := New(srv.URL, VariantAsk)
	reply, err := c.Ask(context.Background(), "chest pain", types.Critical, nil)
	assert.NoError(t, err)
	assert.Equal(t, "Call 911 now.", reply.Text)
	assert.Empty(t, reply.Recommendations)
}

func TestAdviceVariantCarriesSeverityAndIncident(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req types.AdviceRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "stroke symptoms", req.Symptoms)
		assert.Equal(t, "stable", req.Severity)
		if assert.NotNil(t, req.Latitude) {
			assert.Equal(t, 27.76, *req.Latitude)
		}
		json.NewEncoder(w).Encode(types.AdviceResponse{
			Message: "Suspected stroke.",
			Recommendations: []types.Recommendation{
				{Name: "Bayview Medical", ETA: "6 min", Tags: []string{"Stroke Center"}},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, VariantAdvice)
	reply, err := c.Ask(context.Background(), "stroke symptoms", types.Stable, &types.Incident{Lat: 27.76, Lng: -97.39})
	assert.NoError(t, err)
	assert.Equal(t, "Suspected stroke.", reply.Text)
	if assert.Len(t, reply.Recommendations, 1) {
		assert.Equal(t, "Bayview Medical", reply.Recommendations[0].Name)
	}
}

func TestMalformedReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"recommendations":[{"name":"A","eta":"5 min","tags":["X"]}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, VariantAdvice)
	reply, err := c.Ask(context.Background(), "help", types.Critical, nil)
	assert.ErrorIs(t, err, ErrMalformedReply)
	assert.Nil(t, reply)
}

func TestNon200Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, VariantAdvice)
	_, err := c.Ask(context.Background(), "help", types.Critical, nil)
	assert.Error(t, err)
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, VariantAsk)
	_, err := c.Ask(context.Background(), "help", types.Critical, nil)
	assert.Error(t, err)
}
