package live

import (
	"fmt"
	"strings"
)

// Quality is the coarse bitrate tier requested from the API.
type Quality int

const (
	QualityLow Quality = iota + 1
	QualityHigh
)

// Qualities lists every tier in menu order.
func Qualities() []Quality {
	return []Quality{QualityLow, QualityHigh}
}

// ParseQuality accepts a menu number ("1", "2") or a flag token ("low", "high").
func ParseQuality(s string) (Quality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "low":
		return QualityLow, nil
	case "2", "high":
		return QualityHigh, nil
	default:
		return 0, fmt.Errorf("%w: unknown quality %q", ErrInvalidInput, s)
	}
}

// String returns the flag token, the inverse of ParseQuality.
func (q Quality) String() string {
	switch q {
	case QualityLow:
		return "low"
	case QualityHigh:
		return "high"
	default:
		return ""
	}
}

// Qn returns the value of the API "qn" parameter.
func (q Quality) Qn() int {
	switch q {
	case QualityHigh:
		return 10000
	default:
		return 0
	}
}

// MarshalText encodes the flag token so JSON output stays readable.
func (q Quality) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}
