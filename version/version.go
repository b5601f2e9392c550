// Package version reports the build metadata and checks for newer releases.
package version

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bililink-cli/bililink/constant"
	"github.com/bililink-cli/bililink/filesystem"
	"github.com/bililink-cli/bililink/network"
	"github.com/bililink-cli/bililink/where"
	"github.com/metafates/gache"
)

// GitHubAPI is the base URL of the release lookup.
var GitHubAPI = "https://api.github.com"

var versionCacher = gache.New[string](&gache.Options{
	Path:       where.Version(),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

type release struct {
	TagName string `json:"tag_name"`
}

// Latest returns the newest released version without the "v" prefix.
// The answer is cached for two days to stay clear of the GitHub rate limit.
func Latest(ctx context.Context) (string, error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	var latest release
	resp, err := network.New().
		SetBaseURL(GitHubAPI).
		R().
		SetContext(ctx).
		SetHeader("Accept", "application/vnd.github+json").
		SetResult(&latest).
		Get(fmt.Sprintf("/repos/%s/releases/latest", constant.Repository))
	if err != nil {
		return "", err
	}

	if resp.IsError() {
		return "", fmt.Errorf("release lookup: %s", resp.Status())
	}

	if latest.TagName == "" {
		return "", errors.New("empty tag name")
	}

	ver = strings.TrimPrefix(latest.TagName, "v")
	_ = versionCacher.Set(ver)
	return ver, nil
}
