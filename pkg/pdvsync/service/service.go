// Package service implements the PDV synchronization status registry and its HTTP boundary.
package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/pdv3/hybrid-backend/pkg/app/errors"
	"github.com/pdv3/hybrid-backend/pkg/pdvsync"
)

// ErrInvalidReport is wrapped by every validation failure of ReportStatus.
var ErrInvalidReport = errors.New("invalid pdv status report")

// Store is the narrow data-access interface for the registry.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	UpsertStatus(ctx context.Context, status *pdvsync.Status) error
	ListStatuses(ctx context.Context) ([]*pdvsync.Status, error)
}

// Service defines the registry operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// ReportStatus validates the report and replaces the terminal's snapshot,
	// stamping last_seen_at with the server clock.
	ReportStatus(ctx context.Context, req *pdvsync.ReportRequest) error
	// ListStatuses returns all snapshots, most recently seen first.
	ListStatuses(ctx context.Context) (*pdvsync.ListResponse, error)
}

type registryService struct {
	store    Store
	validate *validator.Validate
	now      func() time.Time
}

// Option configures the registry.
type Option func(*registryService)

// WithClock overrides the clock used for last_seen_at.
func WithClock(now func() time.Time) Option {
	return func(s *registryService) {
		s.now = now
	}
}

// NewService creates a new sync status registry
func NewService(store Store, opts ...Option) Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	s := &registryService{
		store:    store,
		validate: v,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *registryService) ReportStatus(ctx context.Context, req *pdvsync.ReportRequest) error {
	if req == nil {
		return apperrors.ValidationError(ErrInvalidReport, "request body is required")
	}

	if err := s.validate.Struct(req); err != nil {
		return apperrors.ValidationError(fmt.Errorf("%w: %w", ErrInvalidReport, err), validationMessage(err))
	}

	// timestamptz keeps microseconds; stamp what will be read back
	seenAt := s.now().UTC().Truncate(time.Microsecond)
	if err := s.store.UpsertStatus(ctx, req.ToStatus(seenAt)); err != nil {
		return apperrors.PersistenceError(err, "failed to save pdv status")
	}

	return nil
}

func (s *registryService) ListStatuses(ctx context.Context) (*pdvsync.ListResponse, error) {
	statuses, err := s.store.ListStatuses(ctx)
	if err != nil {
		return nil, apperrors.PersistenceError(err, "failed to list pdv statuses")
	}

	items := make([]pdvsync.StatusItem, len(statuses))
	for i, st := range statuses {
		items[i] = pdvsync.NewStatusItem(st)
	}

	return &pdvsync.ListResponse{
		Items: items,
		Count: len(items),
	}, nil
}

// validationMessage renders validator errors as "<field> <problem>" joined by "; ".
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}
