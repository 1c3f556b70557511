package notification

import (
	"fmt"
	"net/url"
	"strings"
)

// WhatsAppLink builds a wa.me deep link composing the given message to the
// given phone number. Opening the link is the caller's job; nothing is sent
// from here. Israeli local numbers (leading 0) are rewritten to the 972
// country prefix.
func WhatsAppLink(phone, message string) string {
	clean := digitsOnly(phone)
	if strings.HasPrefix(clean, "0") {
		clean = "972" + clean[1:]
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", clean, url.QueryEscape(message))
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
