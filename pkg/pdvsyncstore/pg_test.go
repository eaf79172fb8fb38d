package pdvsyncstore

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pdv3/hybrid-backend/pkg/pdvsync"
	"github.com/pdv3/hybrid-backend/pkg/pgutil"
	mghelper "github.com/pdv3/hybrid-backend/pkg/pgutil/migrations"
)

func setupStore(t *testing.T) (context.Context, *pgStore) {
	t.Helper()

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(ctx, db, &StatusDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return ctx, NewStore(db)
}

func strPtr(s string) *string { return &s }

func statusAt(pdvID, status string, seen time.Time) *pdvsync.Status {
	return &pdvsync.Status{
		PdvID:      pdvID,
		Status:     status,
		Errors:     []string{},
		LastSeenAt: seen,
	}
}

func findStatus(t *testing.T, ctx context.Context, s *pgStore, pdvID string) *pdvsync.Status {
	t.Helper()

	all, err := s.ListStatuses(ctx)
	if err != nil {
		t.Fatalf("ListStatuses() failed: %v", err)
	}
	for _, st := range all {
		if st.PdvID == pdvID {
			return st
		}
	}
	t.Fatalf("pdv %q not found", pdvID)
	return nil
}

func TestPGStore_UpsertStatus_InsertThenReplace(t *testing.T) {
	ctx, s := setupStore(t)
	t0 := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	first := &pdvsync.Status{
		PdvID:             "PDV-01",
		Status:            "syncing",
		TotalEnviadas:     5,
		PendingSalesLocal: 3,
		Errors:            []string{"timeout"},
		StartedAt:         strPtr("2026-10-15T11:59:00"),
		AppVersion:        strPtr("3.2.1"),
		DeviceName:        strPtr("Caixa 1"),
		LastSeenAt:        t0,
	}
	if err := s.UpsertStatus(ctx, first); err != nil {
		t.Fatalf("UpsertStatus() failed: %v", err)
	}

	got := findStatus(t, ctx, s, "PDV-01")
	if got.Status != "syncing" || got.TotalEnviadas != 5 || got.PendingSalesLocal != 3 {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
	if len(got.Errors) != 1 || got.Errors[0] != "timeout" {
		t.Fatalf("unexpected errors: %v", got.Errors)
	}
	if got.StartedAt == nil || *got.StartedAt != "2026-10-15T11:59:00" {
		t.Fatalf("started_at not stored verbatim: %v", got.StartedAt)
	}
	if !got.LastSeenAt.Equal(t0) {
		t.Fatalf("expected last_seen_at %v, got %v", t0, got.LastSeenAt)
	}

	second := &pdvsync.Status{
		PdvID:         "PDV-01",
		Status:        "idle",
		TotalEnviadas: 8,
		Errors:        []string{},
		LastSeenAt:    t0.Add(30 * time.Second),
	}
	if err := s.UpsertStatus(ctx, second); err != nil {
		t.Fatalf("second UpsertStatus() failed: %v", err)
	}

	all, err := s.ListStatuses(ctx)
	if err != nil {
		t.Fatalf("ListStatuses() failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one row for PDV-01, got %d", len(all))
	}

	got = all[0]
	if got.Status != "idle" || got.TotalEnviadas != 8 || got.PendingSalesLocal != 0 {
		t.Fatalf("snapshot not replaced: %+v", got)
	}
	if len(got.Errors) != 0 {
		t.Fatalf("expected errors to be cleared, got %v", got.Errors)
	}
	// omitted optionals in the new report clear the old values
	if got.StartedAt != nil || got.AppVersion != nil || got.DeviceName != nil {
		t.Fatalf("expected optionals to be cleared, got %v %v %v", got.StartedAt, got.AppVersion, got.DeviceName)
	}
	if !got.LastSeenAt.After(t0) {
		t.Fatalf("expected last_seen_at to advance past %v, got %v", t0, got.LastSeenAt)
	}
}

func TestPGStore_UpsertStatus_NilErrorsStoredAsEmpty(t *testing.T) {
	ctx, s := setupStore(t)

	st := statusAt("PDV-01", "idle", time.Now().UTC())
	st.Errors = nil
	if err := s.UpsertStatus(ctx, st); err != nil {
		t.Fatalf("UpsertStatus() failed: %v", err)
	}

	got := findStatus(t, ctx, s, "PDV-01")
	if got.Errors == nil || len(got.Errors) != 0 {
		t.Fatalf("expected empty errors, got %#v", got.Errors)
	}
}

func TestPGStore_UpsertStatus_NegativeCounts(t *testing.T) {
	ctx, s := setupStore(t)

	st := statusAt("PDV-NEG", "idle", time.Now().UTC())
	st.TotalEnviadas = -4
	st.TotalRecebidas = -1
	st.PendingSalesLocal = -9
	if err := s.UpsertStatus(ctx, st); err != nil {
		t.Fatalf("UpsertStatus() failed: %v", err)
	}

	got := findStatus(t, ctx, s, "PDV-NEG")
	if got.TotalEnviadas != -4 || got.TotalRecebidas != -1 || got.PendingSalesLocal != -9 {
		t.Fatalf("negative counts not preserved: %+v", got)
	}
}

func TestPGStore_ListStatuses_Empty(t *testing.T) {
	ctx, s := setupStore(t)

	all, err := s.ListStatuses(ctx)
	if err != nil {
		t.Fatalf("ListStatuses() failed: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no rows, got %d", len(all))
	}
}

func TestPGStore_ListStatuses_OrderedByRecency(t *testing.T) {
	ctx, s := setupStore(t)
	t0 := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	reports := []*pdvsync.Status{
		statusAt("A", "idle", t0),
		statusAt("B", "idle", t0.Add(time.Second)),
		statusAt("C", "idle", t0.Add(2*time.Second)),
		// same instant as C; ties break on pdv_id
		statusAt("0-TIE", "idle", t0.Add(2*time.Second)),
	}
	for _, r := range reports {
		if err := s.UpsertStatus(ctx, r); err != nil {
			t.Fatalf("UpsertStatus(%s) failed: %v", r.PdvID, err)
		}
	}

	// A reports again and becomes the most recent
	if err := s.UpsertStatus(ctx, statusAt("A", "syncing", t0.Add(3*time.Second))); err != nil {
		t.Fatalf("UpsertStatus(A) failed: %v", err)
	}

	all, err := s.ListStatuses(ctx)
	if err != nil {
		t.Fatalf("ListStatuses() failed: %v", err)
	}

	want := []string{"A", "0-TIE", "C", "B"}
	if len(all) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(all))
	}
	for i, id := range want {
		if all[i].PdvID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, all[i].PdvID)
		}
	}
	for i := 1; i < len(all); i++ {
		if all[i].LastSeenAt.After(all[i-1].LastSeenAt) {
			t.Fatalf("listing not in non-increasing last_seen_at order at %d", i)
		}
	}
}

func TestPGStore_UpsertStatus_ConcurrentFirstReports(t *testing.T) {
	ctx, s := setupStore(t)

	const workers = 16
	var wg sync.WaitGroup
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			st := statusAt("PDV-RACE", fmt.Sprintf("s-%d", i), time.Now().UTC())
			st.TotalEnviadas = int64(i)
			errCh <- s.UpsertStatus(ctx, st)
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			t.Fatalf("concurrent UpsertStatus() failed: %v", err)
		}
	}

	all, err := s.ListStatuses(ctx)
	if err != nil {
		t.Fatalf("ListStatuses() failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one row, got %d", len(all))
	}
	// the surviving row is one complete report, never a mix
	if all[0].Status != fmt.Sprintf("s-%d", all[0].TotalEnviadas) {
		t.Fatalf("row mixes fields from different reports: %+v", all[0])
	}
}

func TestPGStore_UpsertStatus_CancelledContext(t *testing.T) {
	ctx, s := setupStore(t)

	cctx, cancel := context.WithCancel(ctx)
	cancel()

	if err := s.UpsertStatus(cctx, statusAt("PDV-01", "idle", time.Now().UTC())); err == nil {
		t.Fatal("expected error with cancelled context")
	}

	all, err := s.ListStatuses(ctx)
	if err != nil {
		t.Fatalf("ListStatuses() failed: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no rows after failed write, got %d", len(all))
	}
}
