package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/pdv3/hybrid-backend/pkg/app/errors"
	"github.com/pdv3/hybrid-backend/pkg/pdvsync"
)

const serviceName = "PdvSyncRegistry"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the registry Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// ReportStatus wraps the service method with logging
func (ls *logService) ReportStatus(ctx context.Context, req *pdvsync.ReportRequest) (err error) {
	start := time.Now()

	fields := []zap.Field{
		zap.String("service", serviceName),
		zap.String("method", "ReportStatus"),
	}
	if req != nil {
		fields = append(fields,
			zap.String("pdv_id", req.PdvID),
			zap.String("status", req.Status),
			zap.Int64("pending_sales_local", req.PendingSalesLocal),
			zap.Int("errors_count", len(req.Errors)),
		)
	}

	ls.logger.Debug("ReportStatus started", fields...)

	defer func() {
		fields = append(fields, zap.Duration("duration", time.Since(start)))

		switch {
		case err == nil:
			ls.logger.Info("ReportStatus completed", fields...)
		case apperrors.IsInternalError(err):
			ls.logger.Error("ReportStatus failed", append(fields, zap.Error(err))...)
		default:
			ls.logger.Warn("ReportStatus rejected", append(fields, zap.Error(err))...)
		}
	}()

	return ls.svc.ReportStatus(ctx, req)
}

// ListStatuses wraps the service method with logging
func (ls *logService) ListStatuses(ctx context.Context) (resp *pdvsync.ListResponse, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("ListStatuses failed",
				zap.String("service", serviceName),
				zap.String("method", "ListStatuses"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Debug("ListStatuses completed",
			zap.String("service", serviceName),
			zap.String("method", "ListStatuses"),
			zap.Int("count", resp.Count),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.ListStatuses(ctx)
}
