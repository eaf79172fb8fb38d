package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/pdv3/hybrid-backend/pkg/app/errors"
	apphttp "github.com/pdv3/hybrid-backend/pkg/app/http"
	"github.com/pdv3/hybrid-backend/pkg/pdvsync"
)

const maxReportBodyBytes = 1 << 20

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the pdv-sync endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/api/pdv-sync", func(r chi.Router) {
		r.Post("/status", apphttp.HandleError(h.reportStatus))
		r.Get("/status", apphttp.HandleError(h.listStatuses))
	})
}

func (h *HTTP) reportStatus(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxReportBodyBytes))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req pdvsync.ReportRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.logger.Debug("Undecodable pdv status report",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return apperrors.ValidationError(err, fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type))
		}
		return apperrors.BadRequestError(err, "invalid JSON")
	}

	if err := h.service.ReportStatus(r.Context(), &req); err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &pdvsync.ReportResponse{Status: "ok"})
	return nil
}

func (h *HTTP) listStatuses(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.ListStatuses(r.Context())
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
