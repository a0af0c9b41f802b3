package api

import (
	"box-shipping-service/internal/api/handlers"
	"box-shipping-service/internal/api/views"
	"box-shipping-service/internal/store"
	"net/http"
)

// NewRouter wires handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers see only
// the store's action API, never each other.
func NewRouter(st *store.Store, notifier *store.Notifier) http.Handler {
	mux := http.NewServeMux()

	boxHandler := &handlers.BoxHandler{Store: st, Notifier: notifier}
	notifHandler := &handlers.NotificationHandler{Notifier: notifier}
	viewHandler := views.NewHandler(st, notifier)

	mux.HandleFunc("/health", handlers.Health)

	mux.HandleFunc("/api/boxes", boxHandler.Collection)
	mux.HandleFunc("/api/boxes/validate", boxHandler.Validate)
	mux.HandleFunc("/api/boxes/", boxHandler.Item)
	mux.HandleFunc("/api/notifications", notifHandler.Collection)
	mux.HandleFunc("/api/notifications/", notifHandler.Item)

	mux.HandleFunc("/boxes", viewHandler.List)
	mux.HandleFunc("/boxes/remove", viewHandler.Remove)

	// The root pattern also catches every unmatched path; the view
	// handler renders the not-found page for those.
	mux.HandleFunc("/", viewHandler.Form)

	return loggingMiddleware(mux)
}
