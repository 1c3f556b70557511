package ai

import (
	"context"
	"testing"

	"lapidclinic/models"
)

func TestFallbacks_NoAPIKey(t *testing.T) {
	svc := NewDefaultAIService("")
	ctx := context.Background()

	if got := svc.DailyGreeting(ctx); got == "" {
		t.Fatalf("greeting must never be empty")
	}
	if got := svc.SpiritualInsight(ctx, models.ServiceDiagnosis, "דנה"); got == "" {
		t.Fatalf("insight must never be empty")
	}
	if got := svc.WeeklyJournal(ctx, nil, nil); got == "" {
		t.Fatalf("journal must never be empty")
	}
}

func TestCleanGreeting_SkipsHeaderLines(t *testing.T) {
	in := "אפשרות ראשונה:\nמחברים בין הנשמה לייעוד"
	if got := cleanGreeting(in); got != "מחברים בין הנשמה לייעוד" {
		t.Fatalf("expected the non-header line, got %q", got)
	}
}

func TestCleanGreeting_EmptyInputFallsBack(t *testing.T) {
	if got := cleanGreeting("   "); got != greetingFallback {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestFirstLine_TrimsToOneLine(t *testing.T) {
	if got := firstLine("  שורה ראשונה  \nשורה שנייה"); got != "שורה ראשונה" {
		t.Fatalf("got %q", got)
	}
}
