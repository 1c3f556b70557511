package journey

import (
	"context"
	"testing"

	journeyRepo "lapidclinic/database/repository/journey"
)

func TestAdd_ThenListNewestFirst(t *testing.T) {
	svc := &DefaultJourneyService{Repo: journeyRepo.NewMemoryJourneyRepo()}
	ctx := context.Background()

	for _, content := range []string{"מפגש ראשון", "מפגש שני", "מפגש שלישי"} {
		if _, err := svc.Add(ctx, "0521112222", "דנה", content); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	notes, err := svc.ListForClient(ctx, "0521112222")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(notes) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(notes))
	}
	if notes[0].Content != "מפגש שלישי" || notes[2].Content != "מפגש ראשון" {
		t.Fatalf("notes not newest first: %+v", notes)
	}
}

func TestAdd_SnapshotsClientName(t *testing.T) {
	svc := &DefaultJourneyService{Repo: journeyRepo.NewMemoryJourneyRepo()}
	ctx := context.Background()

	note, err := svc.Add(ctx, "0521112222", "דנה כהן", "התחלנו תהליך")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if note.ID == "" {
		t.Fatalf("expected generated id")
	}
	if note.ClientName != "דנה כהן" {
		t.Fatalf("name snapshot lost: %+v", note)
	}
	if note.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}

func TestList_PhoneStringsAreDistinctClients(t *testing.T) {
	svc := &DefaultJourneyService{Repo: journeyRepo.NewMemoryJourneyRepo()}
	ctx := context.Background()

	// Same number, different formatting: two separate clients.
	svc.Add(ctx, "0521112222", "דנה", "הערה א")
	svc.Add(ctx, "052-111-2222", "דנה", "הערה ב")

	notes, _ := svc.ListForClient(ctx, "0521112222")
	if len(notes) != 1 {
		t.Fatalf("phone keys must match exactly, got %d notes", len(notes))
	}
}

func TestAdd_Validation(t *testing.T) {
	svc := &DefaultJourneyService{Repo: journeyRepo.NewMemoryJourneyRepo()}
	ctx := context.Background()

	if _, err := svc.Add(ctx, "", "דנה", "תוכן"); !IsValidation(err) {
		t.Fatalf("expected validation error for empty phone, got %v", err)
	}
	if _, err := svc.Add(ctx, "0521112222", "דנה", "   "); !IsValidation(err) {
		t.Fatalf("expected validation error for empty content, got %v", err)
	}
}
