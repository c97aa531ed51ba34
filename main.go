package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"go-healthnav/advisor"
	"go-healthnav/bridge"
	"go-healthnav/cronjobs"
	"go-healthnav/db"
	"go-healthnav/geocode"
	"go-healthnav/handlers"
	"go-healthnav/nlp"
	"go-healthnav/notify"
	"go-healthnav/routes"
	"go-healthnav/session"
)

// store is the union of what the advisor, map routes, and cron job need.
type store interface {
	advisor.Store
	handlers.HospitalStore
	cronjobs.HospitalStore
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	ctx := context.Background()

	hospitals := initStore(ctx)

	var llm advisor.LLMClient
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		log.Println("OPENAI_API_KEY loaded")
		llm = openai.NewClient(apiKey)
	} else {
		log.Println("OPENAI_API_KEY not set, using canned advice messages")
	}
	adv := advisor.New(hospitals, llm)

	toasts := notify.NewCenter()
	sess := session.New(initAsker(adv), toasts)

	dispatchLat := envFloat("DISPATCH_LAT", 40.7128)
	dispatchLng := envFloat("DISPATCH_LNG", -74.0060)
	cronjobs.InitCronJobs(hospitals, dispatchLat, dispatchLng)

	extract, resolve := initLocationAssist()

	r := routes.SetupRouter(routes.Deps{
		Advisor: adv,
		Store:   hospitals,
		Session: sess,
		Toasts:  toasts,
		Extract: extract,
		Resolve: resolve,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// initStore connects to Postgres when DATABASE_URL is set, otherwise
// falls back to the in-memory seed dataset (the pure mock-data variant).
func initStore(ctx context.Context) store {
	if os.Getenv("DATABASE_URL") == "" {
		log.Println("DATABASE_URL not set, serving seed hospitals from memory")
		return db.NewMemoryStore(db.SeedHospitals)
	}

	pool, err := db.InitPool(ctx)
	if err != nil {
		log.Printf("Failed to connect to Postgres, falling back to memory store: %v", err)
		return db.NewMemoryStore(db.SeedHospitals)
	}

	repo := db.NewHospitalRepo(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure hospitals schema: %v", err)
	}
	if err := repo.Seed(ctx); err != nil {
		log.Printf("Warning: seeding hospitals failed: %v", err)
	}
	return repo
}

// initAsker points the session at a remote advice backend when
// ADVICE_URL is set; otherwise submissions are answered in-process.
func initAsker(adv *advisor.Advisor) session.Asker {
	url := os.Getenv("ADVICE_URL")
	if url == "" {
		return handlers.LocalAsker{Advisor: adv}
	}

	variant := bridge.VariantAdvice
	if os.Getenv("ADVICE_VARIANT") == string(bridge.VariantAsk) {
		variant = bridge.VariantAsk
	}
	log.Printf("Forwarding chat submissions to %s (%s variant)", url, variant)
	return bridge.New(url, variant)
}

// initLocationAssist wires entity extraction and geocoding when both
// credential sets are present. Missing credentials leave the locate
// route answering with the manual-placement hint.
func initLocationAssist() (handlers.ExtractFunc, handlers.ResolveFunc) {
	if os.Getenv("NATURAL_LANGUAGE_CREDENTIALS") == "" || os.Getenv("MAPS_CREDENTIALS") == "" {
		log.Println("Location assist disabled (missing NLP or Maps credentials)")
		return nil, nil
	}

	langClient, err := nlp.InitLanguageClient()
	if err != nil {
		log.Printf("Failed to create Natural Language client, location assist disabled: %v", err)
		return nil, nil
	}

	if _, err := geocode.InitMapsClient(); err != nil {
		log.Printf("Failed to create maps client, location assist disabled: %v", err)
		return nil, nil
	}

	extract := func(ctx context.Context, text string) ([]string, error) {
		return nlp.ExtractLocations(ctx, langClient, text)
	}
	return extract, geocode.GeocodeAddress
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Invalid %s %q, using default", key, raw)
		return fallback
	}
	return v
}
