package healthcheck

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/MyelinBots/heartbeat-go/config"
	"github.com/apex/log"
)

// Status reports whether the heartbeat loop is alive.
type Status interface {
	Running() bool
}

// Healthcheck that starts http server
func StartHealthcheck(ctx context.Context, cfg config.AppConfig, status Status) {
	mux := http.NewServeMux()
	mux.Handle("/healthz", HealthCheckHandler(status))
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("healthcheck server error")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("healthcheck shutdown")
		}
	}()
}

func HealthCheckHandler(status Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !status.Running() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("STOPPED"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
