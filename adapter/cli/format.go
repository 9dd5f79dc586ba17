package cli

import (
	"fmt"
	"strconv"
)

// Placeholder shown for values that were never logged.
const Placeholder = "—"

// FormatOptFloat renders an optional number with the given precision, or
// the placeholder when absent.
func FormatOptFloat(v *float64, decimals int) string {
	if v == nil {
		return Placeholder
	}
	return strconv.FormatFloat(*v, 'f', decimals, 64)
}

// FormatOptInt renders an optional count, or the placeholder when absent.
func FormatOptInt(v *int) string {
	if v == nil {
		return Placeholder
	}
	return strconv.Itoa(*v)
}

// FormatSignedFloat renders an optional number with an explicit sign, or
// the placeholder when absent.
func FormatSignedFloat(v *float64, decimals int) string {
	if v == nil {
		return Placeholder
	}
	return fmt.Sprintf("%+.*f", decimals, *v)
}
