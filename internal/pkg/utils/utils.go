package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// ParseISODurationMinutes parses ISO-8601 durations of the shape the flight
// provider emits (PT2H10M, PT1H, PT45M) into total minutes. Unknown
// designators are skipped.
func ParseISODurationMinutes(duration string) int64 {
	s := strings.TrimPrefix(duration, "PT")

	var total int64
	var num strings.Builder

	for _, r := range s {
		if r >= '0' && r <= '9' {
			num.WriteRune(r)
			continue
		}

		v, _ := strconv.ParseInt(num.String(), 10, 64)
		num.Reset()

		switch r {
		case 'H':
			total += v * 60
		case 'M':
			total += v
		}
	}

	return total
}

// FormatNaira renders a minor-unit-free NGN amount with thousand separators.
// Example: 110000 -> "₦110,000"
func FormatNaira(amount int64) string {
	if amount == 0 {
		return "₦0"
	}

	negative := amount < 0
	if negative {
		amount = -amount
	}

	var result []byte
	str := strconv.FormatInt(amount, 10)

	count := 0
	for i := len(str) - 1; i >= 0; i-- {
		result = append([]byte{str[i]}, result...)
		count++
		if count%3 == 0 && i != 0 {
			result = append([]byte{','}, result...)
		}
	}

	if negative {
		return "₦-" + string(result)
	}
	return "₦" + string(result)
}
