package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"amistoso/internal/middleware"
)

func setupServer(services *Services, cfg *Config) *http.Server {
	router := mux.NewRouter()

	// Health endpoint stays outside auth and rate limiting
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.RequireAuth(services.Verifier))

	registerServices(api, services)

	window := time.Duration(cfg.RateLimit.Window)
	limiter := middleware.NewRateLimiter(clockwork.NewRealClock(), cfg.RateLimit.Limit, window)
	go func() {
		for range time.Tick(window) {
			limiter.Sweep()
		}
	}()

	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
	})

	handler := c.Handler(middleware.Logging(limiter.Handler(router)))

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", getEnv("PORT", cfg.Server.Port)),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}
}

func registerServices(router *mux.Router, services *Services) {
	services.Users.RegisterRoutes(router)
	services.Teams.RegisterRoutes(router)
	services.Requests.RegisterRoutes(router)
	services.Matches.RegisterRoutes(router)
}
