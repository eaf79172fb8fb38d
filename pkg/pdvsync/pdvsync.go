// Package pdvsync holds the domain model of the PDV synchronization status registry.
package pdvsync

import "time"

// Status is the latest synchronization snapshot reported by one PDV terminal.
type Status struct {
	PdvID             string
	Status            string
	TotalEnviadas     int64
	TotalRecebidas    int64
	PendingSalesLocal int64
	Errors            []string
	StartedAt         *string
	FinishedAt        *string
	AppVersion        *string
	DeviceName        *string
	LastSeenAt        time.Time
}

// ReportRequest is the status report sent by a terminal.
// Counts default to zero and errors to an empty list when absent.
type ReportRequest struct {
	PdvID             string   `json:"pdv_id" validate:"required,min=1,max=80"`
	Status            string   `json:"status" validate:"required,min=1,max=30"`
	TotalEnviadas     int64    `json:"total_enviadas"`
	TotalRecebidas    int64    `json:"total_recebidas"`
	PendingSalesLocal int64    `json:"pending_sales_local"`
	Errors            []string `json:"errors"`
	StartedAt         *string  `json:"started_at"`
	FinishedAt        *string  `json:"finished_at"`
	AppVersion        *string  `json:"app_version"`
	DeviceName        *string  `json:"device_name"`
}

// ToStatus builds the snapshot stored for this report, stamped with lastSeenAt.
func (r *ReportRequest) ToStatus(lastSeenAt time.Time) *Status {
	errs := make([]string, len(r.Errors))
	copy(errs, r.Errors)

	return &Status{
		PdvID:             r.PdvID,
		Status:            r.Status,
		TotalEnviadas:     r.TotalEnviadas,
		TotalRecebidas:    r.TotalRecebidas,
		PendingSalesLocal: r.PendingSalesLocal,
		Errors:            errs,
		StartedAt:         r.StartedAt,
		FinishedAt:        r.FinishedAt,
		AppVersion:        r.AppVersion,
		DeviceName:        r.DeviceName,
		LastSeenAt:        lastSeenAt,
	}
}

// ReportResponse acknowledges a recorded report.
type ReportResponse struct {
	Status string `json:"status"`
}

// StatusItem is the public shape of one terminal in a listing.
type StatusItem struct {
	PdvID             string   `json:"pdv_id"`
	Status            string   `json:"status"`
	TotalEnviadas     int64    `json:"total_enviadas"`
	TotalRecebidas    int64    `json:"total_recebidas"`
	PendingSalesLocal int64    `json:"pending_sales_local"`
	Errors            []string `json:"errors"`
	StartedAt         *string  `json:"started_at"`
	FinishedAt        *string  `json:"finished_at"`
	AppVersion        *string  `json:"app_version"`
	DeviceName        *string  `json:"device_name"`
	LastSeenAt        *string  `json:"last_seen_at"`
}

// NewStatusItem maps a stored snapshot to its public shape.
// A missing error list becomes an empty array and a zero last_seen_at becomes null.
func NewStatusItem(s *Status) StatusItem {
	errs := s.Errors
	if errs == nil {
		errs = []string{}
	}

	item := StatusItem{
		PdvID:             s.PdvID,
		Status:            s.Status,
		TotalEnviadas:     s.TotalEnviadas,
		TotalRecebidas:    s.TotalRecebidas,
		PendingSalesLocal: s.PendingSalesLocal,
		Errors:            errs,
		StartedAt:         s.StartedAt,
		FinishedAt:        s.FinishedAt,
		AppVersion:        s.AppVersion,
		DeviceName:        s.DeviceName,
	}
	if !s.LastSeenAt.IsZero() {
		ts := s.LastSeenAt.UTC().Format(time.RFC3339Nano)
		item.LastSeenAt = &ts
	}
	return item
}

// ListResponse is the recency-ordered listing of all known terminals.
type ListResponse struct {
	Items []StatusItem `json:"items"`
	Count int          `json:"count"`
}
