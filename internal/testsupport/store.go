package testsupport

import (
	"testing"

	"olist/internal/config"
	"olist/internal/report"
)

// MustOpenStore opens the report store for a test config and closes it on
// cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *report.Store {
	t.Helper()

	store, err := report.Open(cfg)
	if err != nil {
		t.Fatalf("open report store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close report store: %v", err)
		}
	})
	return store
}
