package bind

import (
	"strconv"
	"time"

	"github.com/edihub/x12/x12"
)

// Int coerces the element at pos to an integer, returning false if absent
// or not parseable. Callers that need a Diagnostic on failure should
// already have run Shape over the owning segment.
func Int(seg x12.Segment, pos int) (int, bool) {
	v, ok := seg.Element(pos)
	if !ok || v.Empty() {
		return 0, false
	}
	n, err := strconv.Atoi(v.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

// Decimal coerces the element at pos to a float64.
func Decimal(seg x12.Segment, pos int) (float64, bool) {
	v, ok := seg.Element(pos)
	if !ok || v.Empty() {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.String(), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Date coerces the element at pos from CCYYMMDD to a time.Time in UTC.
func Date(seg x12.Segment, pos int) (time.Time, bool) {
	v, ok := seg.Element(pos)
	if !ok || len(v) != 8 {
		return time.Time{}, false
	}
	t, err := time.Parse("20060102", v.String())
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ClockTime coerces the element at pos from HHMM, HHMMSS, or HHMMSSDD to a
// time.Time with a zero (reference) date — only the hour/minute/second
// carry meaning. The trailing DD of the 8-digit form is hundredths of a
// second; it is validated as numeric but not otherwise exposed, since
// nothing in this port needs sub-second precision.
func ClockTime(seg x12.Segment, pos int) (time.Time, bool) {
	v, ok := seg.Element(pos)
	if !ok {
		return time.Time{}, false
	}
	raw := v.String()
	layout := "1504"
	switch len(raw) {
	case 6:
		layout = "150405"
	case 8:
		layout = "150405"
		if _, err := strconv.Atoi(raw[6:]); err != nil {
			return time.Time{}, false
		}
		raw = raw[:6]
	}
	t, err := time.Parse(layout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
