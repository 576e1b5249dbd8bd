package cleaning_test

import (
	"testing"

	"olist/internal/cleaning"
	"olist/internal/dataset"
	"olist/internal/testsupport"
)

func TestGeolocationCleaner(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteInput(t, cfg, dataset.Geolocation, [][]string{
		{"geolocation_zip_code_prefix", "geolocation_lat", "geolocation_lng", "geolocation_city", "geolocation_state"},
		{"01310", "-23.56", "-46.64", "sÃ£o paulo", "SP"},
		{"01310", "-23.57", "-46.65", "sÃ£o paulo", "SP"},
		{"30130", "-19.92", "-43.94", "belo horizonte", "MG"},
		{"99998", "100", "-43.94", "nowhere", "XX"},
		{"99997", "-19.92", "200", "nowhere", "XX"},
		{"99996", "abc", "-43.94", "nowhere", "XX"},
	})

	batch := runCleaner(t, cleaning.NewGeolocation(cfg, nil))
	table := batch.Table(dataset.Geolocation)

	if table.Len() != 2 {
		t.Fatalf("Len = %d, want 2", table.Len())
	}
	if got := table.Value(0, "geolocation_city"); got != "são paulo" {
		t.Fatalf("mojibake not repaired: %q", got)
	}
	// The first row per zip prefix wins.
	if got := table.Value(0, "geolocation_lat"); got != "-23.56" {
		t.Fatalf("first occurrence lost: lat = %q", got)
	}

	outcome := batch.Outcomes[dataset.Geolocation]
	if outcome.DroppedDuplicates != 1 {
		t.Fatalf("dropped duplicates = %d, want 1", outcome.DroppedDuplicates)
	}
	if outcome.DroppedInvalid != 3 {
		t.Fatalf("dropped invalid = %d, want 3", outcome.DroppedInvalid)
	}
}
