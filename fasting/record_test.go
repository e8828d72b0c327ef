package fasting

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestRecordRoundTrip(t *testing.T) {
	r := startedRecord(t, 16*time.Hour)

	r, err := Pause(r, t0.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var got Record

	err = json.Unmarshal(b, &got)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if diff := cmp.Diff(r, &got); diff != "" {
		t.Errorf("Record did not survive a round trip:\n%s", diff)
	}

	// a fresh record with empty ledgers and no end time must survive too
	fresh := New("user-1", Protocol186, 0, t0)

	b, err = json.Marshal(fresh)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var gotFresh Record

	err = json.Unmarshal(b, &gotFresh)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if diff := cmp.Diff(fresh, &gotFresh); diff != "" {
		t.Errorf("Fresh record did not survive a round trip:\n%s", diff)
	}
}

func TestIsActiveFasting(t *testing.T) {
	r := New("user-1", Protocol168, 0, t0)

	if IsActiveFasting(r) {
		t.Error("Expected a notStarted record to not be an active fast")
	}

	r, err := Start(r, t0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !IsActiveFasting(r) {
		t.Error("Expected a started record to be an active fast")
	}

	r, err = Pause(r, t0.Add(time.Hour))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if IsActiveFasting(r) {
		t.Error("Expected a paused record to not be an active fast")
	}

	q := QueryForFilter(r, t0.Add(2*time.Hour))
	if q.Active {
		t.Error("Expected the filter query to report an inactive fast")
	}

	if q.Progress != float64(time.Hour)/float64(16*time.Hour) {
		t.Errorf("Unexpected progress in filter query: %v", q.Progress)
	}
}

func TestEngagementNeverGatesTransitions(t *testing.T) {
	r := startedRecord(t, 16*time.Hour)

	r = r.WithAppOpen()
	r = r.WithContentView(ContentView{
		ShownAt: t0.Add(time.Hour),
		Kind:    "motivation",
		Text:    "Halfway there",
	})

	if r.Engagement.AppOpens != 1 || r.Engagement.ContentViews != 1 {
		t.Errorf("Unexpected engagement counters: %+v", r.Engagement)
	}

	if _, err := Pause(r, t0.Add(2*time.Hour)); err != nil {
		t.Errorf("Expected engagement updates to not affect transitions: %v", err)
	}
}
