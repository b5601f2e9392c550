// Package stream flattens play-info stream descriptors into playable URLs and filters them by container format.
//
// A descriptor nests stream[] → format[] → codec[] → url_info[]; every url_info leaf yields one URL built as
// host + base_url + extra. The functions here work on decoded JSON trees, independent of transport.
package stream

import (
	"strings"

	"github.com/bililink-cli/bililink/log"
	"github.com/bililink-cli/bililink/tree"
	"github.com/samber/lo"
)

// Candidate is one playable URL together with the descriptor fields it was found under.
type Candidate struct {
	// URL is the complete playable address.
	URL string `json:"url" jsonschema:"description=Playable url: host + base_url + extra."`
	// Protocol is the protocol_name of the stream, e.g. "http_stream" or "http_hls".
	Protocol string `json:"protocol,omitempty" jsonschema:"description=Protocol name of the stream."`
	// Format is the format_name of the format entry, e.g. "flv", "ts" or "fmp4".
	Format string `json:"format,omitempty" jsonschema:"description=Container name reported by the api."`
	// Codec is the codec_name of the codec entry, e.g. "avc" or "hevc".
	Codec string `json:"codec,omitempty" jsonschema:"description=Video codec name."`
	// Qn is the quality actually served (current_qn).
	Qn int `json:"qn,omitempty" jsonschema:"description=Quality number actually served."`
}

// Collect walks the descriptors depth-first and left-to-right and returns one candidate per url_info
// entry. Nothing is deduplicated or reordered. A missing or mistyped format, codec, url_info,
// base_url, host or extra fails the whole walk.
func Collect(streams []any) ([]*Candidate, error) {
	candidates := make([]*Candidate, 0)

	err := tree.Root(streams, "stream").Each(func(s tree.Node) error {
		protocol := optionalText(s, "protocol_name")

		return s.Field("format").Each(func(f tree.Node) error {
			format := optionalText(f, "format_name")

			return f.Field("codec").Each(func(c tree.Node) error {
				base, err := c.Field("base_url").Text()
				if err != nil {
					return err
				}

				codec := optionalText(c, "codec_name")
				qn := optionalInt(c, "current_qn")

				return c.Field("url_info").Each(func(i tree.Node) error {
					host, err := i.Field("host").Text()
					if err != nil {
						return err
					}

					extra, err := i.Field("extra").Text()
					if err != nil {
						return err
					}

					candidates = append(candidates, &Candidate{
						URL:      Join(host, base, extra),
						Protocol: protocol,
						Format:   format,
						Codec:    codec,
						Qn:       qn,
					})
					return nil
				})
			})
		})
	})
	if err != nil {
		return nil, err
	}

	return candidates, nil
}

// Flatten returns the URLs of Collect in the same order.
func Flatten(streams []any) ([]string, error) {
	candidates, err := Collect(streams)
	if err != nil {
		return nil, err
	}

	return URLs(candidates), nil
}

// URLs projects candidates to their URL strings.
func URLs(candidates []*Candidate) []string {
	return lo.Map(candidates, func(c *Candidate, _ int) string {
		return c.URL
	})
}

// Join concatenates the url fragments without separators after stripping surrounding double quotes from each.
func Join(host, base, extra string) string {
	return unquote(host) + unquote(base) + unquote(extra)
}

func unquote(s string) string {
	return strings.Trim(s, `"`)
}

// optionalText reads a descriptive member. A mistyped one is logged and read as empty.
func optionalText(n tree.Node, name string) string {
	field, ok := n.Optional(name)
	if !ok {
		return ""
	}

	s, err := field.Text()
	if err != nil {
		log.Debugf("ignoring %s: %v", field.Path(), err)
	}
	return s
}

func optionalInt(n tree.Node, name string) int {
	field, ok := n.Optional(name)
	if !ok {
		return 0
	}

	f, err := field.Number()
	if err != nil {
		log.Debugf("ignoring %s: %v", field.Path(), err)
	}
	return int(f)
}
