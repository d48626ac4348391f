package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// round rounds half to even at the given decimal places, the way numpy does.
func round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	p := math.Pow(10, float64(places))
	return math.RoundToEven(x*p) / p
}

// formatFloat renders x like Python's str(float): shortest round-trip digits,
// always with a fractional part or an exponent.
func formatFloat(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	ax := math.Abs(x)
	if ax != 0 && (ax < 1e-4 || ax >= 1e16) {
		return strconv.FormatFloat(x, 'e', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

func itoa(n int) string { return strconv.Itoa(n) }

func percentString(x float64) string {
	return formatFloat(x) + "%"
}

const missingLabel = "<missing>"

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return missingLabel
	case float64:
		if math.IsNaN(x) {
			return missingLabel
		}
		return formatFloat(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case string:
		return x
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format("2006-01-02")
		}
		return x.Format(time.RFC3339)
	}
	return fmt.Sprint(v)
}

// formatStat renders a statistic, using "undefined" for NaN.
func formatStat(x float64) string {
	if math.IsNaN(x) {
		return "undefined"
	}
	return formatFloat(x)
}
