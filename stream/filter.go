package stream

import (
	"strings"

	"github.com/bililink-cli/bililink/live"
	"github.com/samber/lo"
)

// Filter keeps the candidates whose URL contains the token of f, preserving their order.
func Filter(candidates []*Candidate, f live.Format) []*Candidate {
	token := f.String()
	return lo.Filter(candidates, func(c *Candidate, _ int) bool {
		return strings.Contains(c.URL, token)
	})
}

// FilterURLs is Filter over plain URL strings.
func FilterURLs(urls []string, f live.Format) []string {
	token := f.String()
	return lo.Filter(urls, func(u string, _ int) bool {
		return strings.Contains(u, token)
	})
}
