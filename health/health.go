// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package health

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type PauseChecker interface {
	Paused() bool
}

// Handler serves /health, which returns ok while the process runs, and
// /ready, which fails while swap operations are paused.
func Handler(checker PauseChecker) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if checker.Paused() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("paused"))
			return
		}
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// StartHealthEndpoint starts the health endpoints on provided port
func StartHealthEndpoint(port uint16, checker PauseChecker) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           Handler(checker),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	log.Info().Msgf("Starting /health endpoint on port %d", port)
	err := srv.ListenAndServe()
	if err != nil {
		log.Err(err).Msgf("Failed starting health server")
	}
}
