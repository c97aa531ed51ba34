package cronjobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"go-healthnav/advisor"
	"go-healthnav/types"
)

const refreshTimeout = 30 * time.Second

// HospitalStore is what the refresh job needs from the repo.
type HospitalStore interface {
	List(ctx context.Context) ([]types.Hospital, error)
	UpdateETA(ctx context.Context, id, eta string) error
}

// InitCronJobs starts the background schedule. The dispatch point is
// the coordinate ETAs are measured from between incidents.
func InitCronJobs(store HospitalStore, dispatchLat, dispatchLng float64) *cron.Cron {
	log.Println("Starting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// ETA refresh: every 10 minutes
	_, err := c.AddFunc("*/10 * * * *", func() {
		log.Println("CronJob: ETA refresh running")
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if err := RefreshETAs(ctx, store, dispatchLat, dispatchLng); err != nil {
			log.Println("Error refreshing ETAs:", err)
		}
	})
	if err != nil {
		log.Println("Error scheduling ETA refresh:", err)
	}

	c.Start()
	return c
}

// RefreshETAs recomputes every hospital's stored ETA string from its
// distance to the dispatch point. Hospitals without coordinates keep
// whatever the seed script gave them.
func RefreshETAs(ctx context.Context, store HospitalStore, dispatchLat, dispatchLng float64) error {
	hospitals, err := store.List(ctx)
	if err != nil {
		return err
	}

	updated := 0
	for _, h := range hospitals {
		if h.Lat == 0 && h.Lng == 0 {
			continue
		}
		miles := advisor.HaversineMiles(dispatchLat, dispatchLng, h.Lat, h.Lng)
		eta := advisor.FormatETA(miles, types.Critical)
		if eta == h.ETA {
			continue
		}
		if err := store.UpdateETA(ctx, h.ID, eta); err != nil {
			log.Printf("Error updating ETA for %s: %v", h.ID, err)
			continue
		}
		updated++
	}

	log.Printf("ETA refresh complete: %d of %d hospitals updated", updated, len(hospitals))
	return nil
}
