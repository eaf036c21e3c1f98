package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-htlc/api/handlers"
)

func NewRouter(
	orderHandler *handlers.OrderHandler,
	fillHandler *handlers.FillHandler,
	adminHandler *handlers.AdminHandler,
	confirmationsHandler *handlers.ConfirmationsHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/orders", orderHandler.HandleSubmit).Methods("POST")
	r.HandleFunc("/v1/orders/{orderId}", orderHandler.HandleGet).Methods("GET")
	r.HandleFunc("/v1/orders/{orderId}/broadcast", orderHandler.HandleBroadcast).Methods("POST")
	r.HandleFunc("/v1/orders/{orderId}/rate", orderHandler.HandleRate).Methods("GET")
	r.HandleFunc("/v1/orders/{orderId}/fills", fillHandler.HandleFill).Methods("POST")
	r.HandleFunc("/v1/orders/{orderId}/fills/{fillIndex:[0-9]+}/release", fillHandler.HandleRelease).Methods("POST")
	r.HandleFunc("/v1/orders/{orderId}/fills/{fillIndex:[0-9]+}/complete", fillHandler.HandleComplete).Methods("POST")
	r.HandleFunc("/v1/orders/{orderId}/fills/{fillIndex:[0-9]+}/secret", fillHandler.HandleSecret).Methods("GET")
	r.HandleFunc("/v1/pause", adminHandler.HandlePause).Methods("POST")
	r.HandleFunc("/v1/resume", adminHandler.HandleResume).Methods("POST")
	r.HandleFunc("/v1/chains/{chainId:[0-9]+}/confirmations", confirmationsHandler.HandleRequest).Methods("GET")
	return r
}

func Serve(ctx context.Context, addr string, handler http.Handler) {
	server := &http.Server{
		Addr:        addr,
		Handler:     handler,
		ReadTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down server")
	} else {
		log.Info().Msgf("Server shut down gracefully.")
	}
}
