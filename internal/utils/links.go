package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// WhatsAppLink builds a wa.me deep link with a pre-filled message. wa.me only
// accepts full international numbers, so national-format Moroccan numbers
// (leading 0) are normalized to the 212 country code first. There is no
// delivery confirmation; the link just opens a chat.
func WhatsAppLink(phone, message string) string {
	number := strings.TrimPrefix(strings.ReplaceAll(phone, " ", ""), "+")
	if strings.HasPrefix(number, "0") && len(number) == 10 {
		number = "212" + number[1:]
	}
	link := "https://wa.me/" + number
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}

// TelLink builds a tel: URI for the call button in the admin dashboard.
func TelLink(phone string) string {
	return "tel:" + strings.ReplaceAll(phone, " ", "")
}

// MapsLink points Google Maps at the delivery position, preferring exact
// coordinates over the free-text address.
func MapsLink(lat, lng float64, address string) string {
	if lat != 0 || lng != 0 {
		return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%f,%f", lat, lng)
	}
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(address)
}
