package analytics

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func newBufferTracker(id string) (*Tracker, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	return New(id, logger), &buf
}

func decode(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		records = append(records, rec)
	}
	return records
}

func TestDisabledTrackerIsSilent(t *testing.T) {
	tr, buf := newBufferTracker("")
	tr.TrackEvent("contact_form", "submit_start", "contact_section", -1)
	tr.TrackPageView("/blog")
	tr.ReportVital("LCP", 1200, "v1")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
	if tr.Enabled() {
		t.Error("tracker without id should be disabled")
	}
	if Disabled().Enabled() {
		t.Error("Disabled() should be disabled")
	}
}

func TestTrackEvent(t *testing.T) {
	tr, buf := newBufferTracker("G-1")
	tr.TrackEvent("contact_form", "submit_success", "contact_section", -1)

	recs := decode(t, buf)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	rec := recs[0]
	if rec["action"] != "contact_form" || rec["category"] != "submit_success" || rec["label"] != "contact_section" {
		t.Errorf("unexpected record %v", rec)
	}
	if _, ok := rec["value"]; ok {
		t.Error("negative value should be omitted")
	}
	if rec["analytics_id"] != "G-1" {
		t.Errorf("expected analytics id, got %v", rec["analytics_id"])
	}
}

func TestReportVitalRounds(t *testing.T) {
	tr, buf := newBufferTracker("G-1")
	tr.ReportVital("FID", 12.6, "v2")
	recs := decode(t, buf)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0]["value"] != float64(13) {
		t.Errorf("expected rounded value 13, got %v", recs[0]["value"])
	}
	if recs[0]["category"] != "Web Vitals" {
		t.Errorf("unexpected category %v", recs[0]["category"])
	}
}

func TestTrackPageView(t *testing.T) {
	tr, buf := newBufferTracker("G-1")
	tr.TrackPageView("/services")
	recs := decode(t, buf)
	if len(recs) != 1 || recs[0]["page_path"] != "/services" || recs[0]["msg"] != "page_view" {
		t.Errorf("unexpected records %v", recs)
	}
}
