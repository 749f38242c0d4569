// Package health serves the wallet daemon's liveness endpoint. The signing
// bridge stays private while this port can be probed by supervisors.
package health

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// StartHealthEndpoint blocks serving /health on the given port. The
// endpoint reports liveness only; it knows nothing about wallet pairings.
func StartHealthEndpoint(port uint16) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	log.Info().Msgf("Serving /health on port %d", port)
	if err := srv.ListenAndServe(); err != nil {
		log.Err(err).Msgf("Health endpoint stopped")
	}
}
