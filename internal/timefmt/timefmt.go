// Package timefmt formats and parses media times shown in the player.
package timefmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalid is returned by Parse for input that is not a time.
var ErrInvalid = errors.New("invalid time")

// Format renders a media time in seconds as m:ss.
//
// NaN, infinite and negative inputs render as "0:00". There is no hours
// field: 75 minutes renders as "75:00".
func Format(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "0:00"
	}
	m := int64(math.Floor(seconds / 60))
	s := int64(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%d:%02d", m, s)
}

// Parse reads "m:ss", "h:mm:ss" or a plain number of seconds.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalid
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
	}

	var total float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil || v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
		}
		// Only the leading field may exceed its unit.
		if i > 0 && v >= 60 {
			return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
		}
		total = total*60 + v
	}
	return total, nil
}
