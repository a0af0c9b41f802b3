package main

import (
	"box-shipping-service/internal/adapters/gateway"
	"box-shipping-service/internal/api"
	"box-shipping-service/internal/config"
	"box-shipping-service/internal/store"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires the in-memory box store and the simulated shipment gateway
// behind the router and starts the HTTP server. All state is volatile;
// a restart starts from an empty (or freshly seeded) store.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	seedPath := config.Get("SEED_PATH", "")
	gatewayDelay := time.Duration(config.GetInt("GATEWAY_DELAY_MS", 400)) * time.Millisecond
	notifyTTL := time.Duration(config.GetInt("NOTIFY_TTL_MS", 5000)) * time.Millisecond

	gw := gateway.NewSimulatedGateway(gatewayDelay)
	st := store.New(gw)
	notifier := store.NewNotifier(notifyTTL)
	defer notifier.Close()

	if seedPath != "" {
		if err := store.SeedFromJSON(st, seedPath); err != nil {
			log.Fatal(err)
		}
	}

	router := api.NewRouter(st, notifier)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
