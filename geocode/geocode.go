package geocode

import (
	"context"
	"fmt"
	"os"
	"sync"

	"googlemaps.github.io/maps"
)

// mapsClient is a singleton maps client instance.
var (
	mapsClient *maps.Client
	clientOnce sync.Once
)

// InitMapsClient initializes and returns a singleton Google Maps client.
func InitMapsClient() (*maps.Client, error) {
	var initErr error
	clientOnce.Do(func() {
		apiKey := os.Getenv("MAPS_CREDENTIALS")
		if apiKey == "" {
			initErr = fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
			return
		}
		mapsClient, initErr = maps.NewClient(maps.WithAPIKey(apiKey))
	})
	if initErr != nil {
		return nil, initErr
	}
	if mapsClient == nil {
		return nil, fmt.Errorf("maps client not initialized")
	}
	return mapsClient, nil
}

// Place is a resolved incident candidate.
type Place struct {
	FormattedAddress string  `json:"formattedAddress"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
}

// GeocodeAddress resolves a place name to coordinates, keeping the
// first (best) result the way the geocoding API ranks them.
func GeocodeAddress(ctx context.Context, address string) (*Place, error) {
	client, err := InitMapsClient()
	if err != nil {
		return nil, err
	}

	req := &maps.GeocodingRequest{
		Address: address,
	}

	results, err := client.Geocode(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", address, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no geocoding results for %q", address)
	}

	best := results[0]
	return &Place{
		FormattedAddress: best.FormattedAddress,
		Lat:              best.Geometry.Location.Lat,
		Lng:              best.Geometry.Location.Lng,
	}, nil
}
