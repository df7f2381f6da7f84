package utils

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// BookingSummary carries the fields rendered into the prefilled WhatsApp
// message a guest sends after booking.
type BookingSummary struct {
	Name       string
	Email      string
	Phone      string
	Date       string
	Time       string
	Guests     int
	Occasion   string
	Location   string
	AddOnNames []string
	Total      float64
	Notes      string
}

// BuildWhatsAppLink returns a wa.me deep link with the booking summary
// URL-encoded as the message text. Link building is a notification
// convenience only; it must never fail a booking.
func BuildWhatsAppLink(baseURL string, s BookingSummary) string {
	location := strings.TrimSpace(s.Location)
	if location == "" {
		location = "Not specified"
	}
	addOns := strings.Join(s.AddOnNames, ", ")
	if addOns == "" {
		addOns = "None"
	}

	var b strings.Builder
	b.WriteString("Hello The Epoch ✨\n\n")
	b.WriteString("I'd like to book a Luxury Picnic.\n\n")
	fmt.Fprintf(&b, "👤 Name: %s\n", s.Name)
	fmt.Fprintf(&b, "📧 Email: %s\n", s.Email)
	fmt.Fprintf(&b, "📱 Phone: %s\n", s.Phone)
	fmt.Fprintf(&b, "📅 Date: %s\n", s.Date)
	fmt.Fprintf(&b, "🕒 Time: %s\n", s.Time)
	fmt.Fprintf(&b, "👥 Guests: %d\n", s.Guests)
	fmt.Fprintf(&b, "💍 Occasion: %s\n", s.Occasion)
	fmt.Fprintf(&b, "📍 Location: %s\n", location)
	fmt.Fprintf(&b, "🎁 Add-ons: %s\n", addOns)
	fmt.Fprintf(&b, "💰 Estimated Total: R%s\n", FormatRand(s.Total))
	if notes := strings.TrimSpace(s.Notes); notes != "" {
		fmt.Fprintf(&b, "\n📝 Notes: %s\n", notes)
	}
	b.WriteString("\nPlease let me know availability.")

	return baseURL + "?text=" + url.QueryEscape(b.String())
}

// FormatRand renders a whole-rand amount with thousands separators,
// e.g. 1700 -> "1,700".
func FormatRand(amount float64) string {
	n := int64(math.Round(amount))
	neg := n < 0
	if neg {
		n = -n
	}
	digits := strconv.FormatInt(n, 10)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}
	return b.String()
}
