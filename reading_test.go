package pitemp

import (
	"encoding/json"
	"testing"
	"time"
)

func TestReading_JSONShape(t *testing.T) {
	t.Parallel()

	readAt := time.Date(2026, 8, 30, 14, 5, 9, 0, time.UTC)
	r := Reading{
		HumRH:     55.2,
		TempC:     21.3,
		Timestamp: readAt,
		Location:  "garage",
	}

	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(doc) != 4 {
		t.Errorf("document fields: want 4, got %d (%v)", len(doc), doc)
	}
	if got := doc["hum_rh"]; got != 55.2 {
		t.Errorf("hum_rh: want 55.2, got %v", got)
	}
	if got := doc["temp_c"]; got != 21.3 {
		t.Errorf("temp_c: want 21.3, got %v", got)
	}
	if got := doc["location"]; got != "garage" {
		t.Errorf("location: want %q, got %v", "garage", got)
	}

	// Timestamp must serialize as ISO-8601 / RFC 3339.
	ts, ok := doc["timestamp"].(string)
	if !ok {
		t.Fatalf("timestamp: want string, got %T", doc["timestamp"])
	}
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		t.Fatalf("timestamp not RFC 3339: %q (%v)", ts, err)
	}
	if !parsed.Equal(readAt) {
		t.Errorf("timestamp: want %v, got %v", readAt, parsed)
	}
}
