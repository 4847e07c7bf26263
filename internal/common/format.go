package common

import (
	"fmt"
	"strings"
)

// Display sentinels for missing data. Missing numerics render as NA; missing
// text fields render as Placeholder.
const (
	NA          = "N/A"
	Placeholder = "-"
)

// FormatSignedPct renders a percentage metric with an explicit sign and one
// decimal place. A nil value renders as "N/A", never as "+0.0%".
func FormatSignedPct(v *float64) string {
	if v == nil {
		return NA
	}
	return fmt.Sprintf("%+.1f%%", *v)
}

// FormatPct renders a percentage with the given number of decimal places.
func FormatPct(v float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, v)
}

// FormatAmount renders a currency amount with thousands separators and no
// decimals (e.g. 10000 -> "10,000"). Zero means "not provided" and renders
// as the placeholder.
func FormatAmount(v float64) string {
	if v <= 0 {
		return Placeholder
	}
	s := fmt.Sprintf("%.0f", v)
	var sb strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// OrPlaceholder returns the trimmed value, or the placeholder when empty.
func OrPlaceholder(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Placeholder
	}
	return s
}
