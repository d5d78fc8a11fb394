package metrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Service serves metrics over HTTP
type Service struct {
	*http.Server
	log *zap.Logger
}

// NewService creates a Prometheus service listening on addr. It returns nil
// when addr is empty, and every method is safe to call on a nil Service.
func NewService(addr string, log *zap.Logger) *Service {
	if addr == "" {
		return nil
	}
	return &Service{
		Server: &http.Server{
			Addr:    addr,
			Handler: promhttp.Handler(),
		},
		log: log,
	}
}

// Start runs the HTTP service; it blocks until the service is shut down.
func (ms *Service) Start() {
	if ms == nil {
		return
	}
	ms.log.Info("metrics service is running", zap.String("endpoint", ms.Addr))
	err := ms.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		ms.log.Warn("metrics service couldn't start on configured address", zap.Error(err))
	}
}

// ShutDown stops the service.
func (ms *Service) ShutDown() {
	if ms == nil {
		return
	}
	ms.log.Info("shutting down metrics service", zap.String("endpoint", ms.Addr))
	if err := ms.Shutdown(context.Background()); err != nil {
		ms.log.Error("can't shut metrics service down", zap.Error(err))
	}
}
