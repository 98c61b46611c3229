package missing

import "testing"

func TestTracker_Report(t *testing.T) {
	tracker := New()

	if tracker.HasMissing() {
		t.Error("HasMissing() = true for empty tracker")
	}

	tracker.Record("Year")
	tracker.Record("Last Name")
	tracker.Record("Year")
	tracker.Record("Page Number")
	tracker.Record("Year")

	if !tracker.HasMissing() {
		t.Error("HasMissing() = false after recording")
	}

	report := tracker.Report()
	want := []Count{
		{Label: "Year", Count: 3},
		{Label: "Last Name", Count: 1},
		{Label: "Page Number", Count: 1},
	}
	if len(report) != len(want) {
		t.Fatalf("Report() returned %d counts, want %d", len(report), len(want))
	}
	for i := range want {
		if report[i] != want[i] {
			t.Errorf("Report()[%d] = %+v, want %+v", i, report[i], want[i])
		}
	}
}

func TestTracker_NilSafe(t *testing.T) {
	var tracker *Tracker

	tracker.Record("Year") // must not panic
	if tracker.HasMissing() {
		t.Error("HasMissing() = true for nil tracker")
	}
	if report := tracker.Report(); report != nil {
		t.Errorf("Report() = %v for nil tracker, want nil", report)
	}
}
