package notification

import (
	"strings"

	"lapidclinic/models"
)

// maleFirstNames is the fixed list driving the grammatical-gender heuristic.
// First names outside this list keep the templates' default feminine
// phrasing; that imprecision is accepted, not a bug.
var maleFirstNames = map[string]bool{
	"דוד": true, "משה": true, "חיים": true, "אברהם": true, "יצחק": true,
	"יעקב": true, "יוסף": true, "ישראל": true, "אייל": true, "ציון": true,
	"עידן": true, "אלעד": true, "גלעד": true, "רועי": true, "איתי": true,
	"יונתן": true, "יהונתן": true, "תומר": true, "אורן": true, "עמית": true,
	"ניר": true,
}

// masculineRewrites are applied in this exact order; earlier replacements
// can intersect later patterns, so the order is part of the behavior.
var masculineRewrites = [][2]string{
	{"היקרה", "היקר"},
	{"האהובה", "האלוף"},
	{"מתרגשת", "מתרגש"},
	{"נפגשות", "נפגשים"},
	{"ותרצי", "ותצה"},
	{"מוזמנת", "מוזמן"},
}

// FormatMessage substitutes the placeholder tokens of a template with the
// appointment's fields, then adapts grammatical gender. Pure function; a
// missing spiritual insight becomes an empty string.
func FormatMessage(template string, appt models.Appointment, serviceName string) string {
	msg := template
	msg = strings.ReplaceAll(msg, "{clientName}", appt.ClientName)
	msg = strings.ReplaceAll(msg, "{date}", appt.Date)
	msg = strings.ReplaceAll(msg, "{time}", appt.Time)
	msg = strings.ReplaceAll(msg, "{serviceName}", serviceName)
	msg = strings.ReplaceAll(msg, "{spiritualInsight}", appt.SpiritualInsight)
	return adaptGender(msg, appt.ClientName)
}

// adaptGender rewrites feminine word forms to masculine ones when the
// client's first name is on the fixed male-name list. Literal string
// replacement, not grammatical analysis. The name is split as stored, with
// no trimming: a leading space makes the first token empty and no rewrite
// happens.
func adaptGender(msg, clientName string) string {
	first := strings.SplitN(clientName, " ", 2)[0]
	if !maleFirstNames[first] {
		return msg
	}
	for _, sub := range masculineRewrites {
		msg = strings.ReplaceAll(msg, sub[0], sub[1])
	}
	return msg
}
