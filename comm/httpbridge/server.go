package httpbridge

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/immutablex/imx-link/comm"
	"github.com/rs/zerolog/log"
)

// NewRouter builds the wallet daemon's request router.
func NewRouter(handler comm.Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc(RequestPath, func(w http.ResponseWriter, req *http.Request) {
		envelope := &comm.Request{}
		d := json.NewDecoder(req.Body)
		if err := d.Decode(envelope); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := handler.Handle(req.Context(), envelope)
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Err(err).Msgf("Error encoding %s response", resp.Type)
		}
	}).Methods("POST")

	return r
}

// Serve runs the wallet daemon until ctx is done.
func Serve(ctx context.Context, addr string, handler comm.Handler) {
	server := &http.Server{
		Addr:        addr,
		Handler:     NewRouter(handler),
		ReadTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting wallet bridge on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down wallet bridge")
	} else {
		log.Info().Msgf("Wallet bridge shut down gracefully.")
	}
}
