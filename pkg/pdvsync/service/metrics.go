package service

import (
	"context"
	"time"

	"github.com/pdv3/hybrid-backend/internal/metrics"
	apperrors "github.com/pdv3/hybrid-backend/pkg/app/errors"
	"github.com/pdv3/hybrid-backend/pkg/pdvsync"
)

// metricsService records Prometheus metrics around Service calls
type metricsService struct {
	svc Service
}

// NewMetrics creates a metrics decorator for the registry Service.
func NewMetrics(svc Service) Service {
	return &metricsService{svc: svc}
}

func (ms *metricsService) ReportStatus(ctx context.Context, req *pdvsync.ReportRequest) error {
	start := time.Now()
	err := ms.svc.ReportStatus(ctx, req)
	metrics.ReportDuration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		metrics.ReportsTotal.WithLabelValues(metrics.ResultOK).Inc()
		metrics.PendingSales.WithLabelValues(req.PdvID).Set(float64(req.PendingSalesLocal))
	case apperrors.Is(err, apperrors.CategoryValidation):
		metrics.ReportsTotal.WithLabelValues(metrics.ResultInvalid).Inc()
	default:
		metrics.ReportsTotal.WithLabelValues(metrics.ResultError).Inc()
	}
	return err
}

func (ms *metricsService) ListStatuses(ctx context.Context) (*pdvsync.ListResponse, error) {
	resp, err := ms.svc.ListStatuses(ctx)
	if err != nil {
		metrics.ListRequestsTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}

	metrics.ListRequestsTotal.WithLabelValues(metrics.ResultOK).Inc()
	metrics.Terminals.Set(float64(resp.Count))
	return resp, nil
}
