package cronjobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-healthnav/types"
)

type fakeStore struct {
	hospitals []types.Hospital
	listErr   error
	updates   map[string]string
}

func (f *fakeStore) List(_ context.Context) ([]types.Hospital, error) {
	return f.hospitals, f.listErr
}

func (f *fakeStore) UpdateETA(_ context.Context, id, eta string) error {
	if f.updates == nil {
		f.updates = map[string]string{}
	}
	f.updates[id] = eta
	return nil
}

func TestRefreshETAsUpdatesStaleEntries(t *testing.T) {
	store := &fakeStore{hospitals: []types.Hospital{
		{ID: "near", Name: "Near", ETA: "stale", Lat: 40.72, Lng: -74.00},
		{ID: "nocoords", Name: "Unknown Spot", ETA: "N/A"},
	}}

	err := RefreshETAs(context.Background(), store, 40.7128, -74.0060)
	assert.NoError(t, err)

	// Only the hospital with coordinates got a recomputed ETA.
	assert.Len(t, store.updates, 1)
	assert.NotEmpty(t, store.updates["near"])
	assert.NotEqual(t, "stale", store.updates["near"])
}

func TestRefreshETAsSkipsUnchanged(t *testing.T) {
	store := &fakeStore{hospitals: []types.Hospital{
		{ID: "same", Name: "Same", ETA: "Unknown", Lat: 40.7128, Lng: -74.0060},
	}}

	err := RefreshETAs(context.Background(), store, 40.7128, -74.0060)
	assert.NoError(t, err)
	assert.Empty(t, store.updates)
}

func TestRefreshETAsPropagatesListError(t *testing.T) {
	store := &fakeStore{listErr: errors.New("down")}
	assert.Error(t, RefreshETAs(context.Background(), store, 0, 0))
}
