package notification

import (
	"strings"
	"testing"

	"lapidclinic/models"
)

func TestFormatMessage_FillsEveryPlaceholder(t *testing.T) {
	tmpl := "{clientName} | {date} | {time} | {serviceName} | {spiritualInsight}"
	appt := models.Appointment{
		ClientName:       "דנה כהן",
		Date:             "2025-03-10",
		Time:             "10:00",
		SpiritualInsight: "שנה של צמיחה",
	}

	msg := FormatMessage(tmpl, appt, "אבחון נומרולוגי")
	if msg != "דנה כהן | 2025-03-10 | 10:00 | אבחון נומרולוגי | שנה של צמיחה" {
		t.Fatalf("unexpected expansion: %q", msg)
	}
}

func TestFormatMessage_DefaultTemplatesExpandClean(t *testing.T) {
	appt := models.Appointment{ClientName: "דנה", Date: "2025-03-10", Time: "10:00"}
	tmpls := models.DefaultMessageTemplates()
	for _, kind := range []models.TemplateKind{
		models.TemplateConfirmation, models.TemplateCancellation,
		models.TemplateReminder, models.TemplatePending,
	} {
		msg := FormatMessage(tmpls.Get(kind), appt, "אבחון נומרולוגי")
		if strings.ContainsAny(msg, "{}") {
			t.Fatalf("%s: unexpanded placeholder left in message: %q", kind, msg)
		}
	}
}

func TestFormatMessage_MissingInsightBecomesEmpty(t *testing.T) {
	msg := FormatMessage("תובנה: {spiritualInsight}.", models.Appointment{ClientName: "דנה"}, "")
	if msg != "תובנה: ." {
		t.Fatalf("expected empty substitution, got %q", msg)
	}
}

func TestAdaptGender_ListedMaleName(t *testing.T) {
	appt := models.Appointment{ClientName: "דוד לוי"}
	msg := FormatMessage("{clientName} היקרה, מוזמנת למפגש. אני מתרגשת!", appt, "")
	for _, feminine := range []string{"היקרה", "מוזמנת", "מתרגשת"} {
		if strings.Contains(msg, feminine) {
			t.Fatalf("feminine form %q survived for a listed male name: %q", feminine, msg)
		}
	}
	if !strings.Contains(msg, "היקר") || !strings.Contains(msg, "מוזמן") || !strings.Contains(msg, "מתרגש") {
		t.Fatalf("masculine forms missing: %q", msg)
	}
}

func TestAdaptGender_UnlistedNameKeepsFeminine(t *testing.T) {
	appt := models.Appointment{ClientName: "דנה לוי"}
	msg := FormatMessage("{clientName} היקרה, מוזמנת למפגש.", appt, "")
	if !strings.Contains(msg, "היקרה") || !strings.Contains(msg, "מוזמנת") {
		t.Fatalf("unlisted first name must keep the feminine phrasing: %q", msg)
	}
}

func TestAdaptGender_LeadingSpaceDefeatsMatch(t *testing.T) {
	// The stored name is split as-is; a leading space yields an empty
	// first token, so even a listed male name keeps the feminine phrasing.
	appt := models.Appointment{ClientName: " דוד"}
	msg := FormatMessage("{clientName} היקרה", appt, "")
	if !strings.Contains(msg, "היקרה") {
		t.Fatalf("leading-space name must not trigger the masculine rewrite: %q", msg)
	}
}

func TestAdaptGender_FirstNameOnlyDecides(t *testing.T) {
	// Surname matching a male name must not trigger the rewrite.
	appt := models.Appointment{ClientName: "רחל דוד"}
	msg := FormatMessage("{clientName} היקרה", appt, "")
	if !strings.Contains(msg, "היקרה") {
		t.Fatalf("surname must not drive the gender heuristic: %q", msg)
	}
}

func TestWhatsAppLink_NormalizesIsraeliNumber(t *testing.T) {
	link := WhatsAppLink("054-123-4567", "שלום")
	if !strings.HasPrefix(link, "https://wa.me/972541234567?text=") {
		t.Fatalf("unexpected link: %q", link)
	}
	if strings.ContainsAny(link, " \n") {
		t.Fatalf("message must be URL-escaped: %q", link)
	}
}

func TestWhatsAppLink_InternationalNumberKept(t *testing.T) {
	link := WhatsAppLink("+972 52 111 2222", "hi")
	if !strings.HasPrefix(link, "https://wa.me/972521112222?text=") {
		t.Fatalf("unexpected link: %q", link)
	}
}
