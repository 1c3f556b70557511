package cron

import (
	"testing"
	"time"
)

func TestUntilNextRun_LaterToday(t *testing.T) {
	now := time.Date(2025, 3, 10, 6, 30, 0, 0, time.UTC)

	d := untilNextRun(now, 8)
	if d != 90*time.Minute {
		t.Fatalf("want 90m until 08:00, got %v", d)
	}
}

func TestUntilNextRun_RollsToTomorrow(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	d := untilNextRun(now, 8)
	if d != 24*time.Hour {
		t.Fatalf("exactly at the hour must wait a full day, got %v", d)
	}

	now = time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC)
	if d := untilNextRun(now, 8); d != 22*time.Hour+45*time.Minute {
		t.Fatalf("want 22h45m, got %v", d)
	}
}
