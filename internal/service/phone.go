package service

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// defaultPhoneRegion は国番号なしの番号を解釈する地域（エチオピア）
const defaultPhoneRegion = "ET"

// normalizePhone returns the E.164 form of raw when it parses as a valid number,
// otherwise the trimmed input unchanged.
func normalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	num, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
