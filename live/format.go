package live

import (
	"fmt"
	"strings"
)

// Format is the container format of a stream URL.
type Format int

const (
	FormatM3U8 Format = iota + 1
	FormatFLV
)

// Formats lists every format in menu order.
func Formats() []Format {
	return []Format{FormatM3U8, FormatFLV}
}

// ParseFormat accepts a menu number ("1", "2") or a flag token ("m3u8", "flv").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "m3u8":
		return FormatM3U8, nil
	case "2", "flv":
		return FormatFLV, nil
	default:
		return 0, fmt.Errorf("%w: unknown format %q", ErrInvalidInput, s)
	}
}

// String returns the token used in API queries and to filter URLs, the inverse of ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatM3U8:
		return "m3u8"
	case FormatFLV:
		return "flv"
	default:
		return ""
	}
}

// MarshalText encodes the token so JSON output stays readable.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
