package services

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/models"
)

// rangeRegexp captures "<low>-<high><unit>" labels such as "450-499k".
var rangeRegexp = regexp.MustCompile(`^(\d+)-(\d+)([km]?)$`)

var ErrBadRange = errors.New("malformed price range label")

// ParseRange converts a bucket label into the half-open interval it covers.
//
//	"450-499k" → [450000, 500000)
//	"1-2m"     → [1000000, 3000000)
func ParseRange(label string) (models.PriceBounds, error) {
	m := rangeRegexp.FindStringSubmatch(normaliseLabel(label))
	if m == nil {
		return models.PriceBounds{}, fmt.Errorf("%w: %q", ErrBadRange, label)
	}

	low, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return models.PriceBounds{}, fmt.Errorf("%w: %q: %v", ErrBadRange, label, err)
	}
	high, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return models.PriceBounds{}, fmt.Errorf("%w: %q: %v", ErrBadRange, label, err)
	}
	if high < low {
		return models.PriceBounds{}, fmt.Errorf("%w: %q: upper below lower", ErrBadRange, label)
	}

	unit := int64(1)
	switch m[3] {
	case "k":
		unit = 1_000
	case "m":
		unit = 1_000_000
	}
	if high > math.MaxInt64/unit-1 {
		return models.PriceBounds{}, fmt.Errorf("%w: %q: out of range", ErrBadRange, label)
	}
	return models.PriceBounds{Low: low * unit, High: (high + 1) * unit}, nil
}

// normaliseLabel lowercases and strips all whitespace.
func normaliseLabel(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}
