package cmd

import (
	"github.com/bililink-cli/bililink/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// location is a path bililink writes to, selectable by a bool flag.
type location struct {
	name  string
	flag  string
	short mo.Option[string]
	path  func() string
}

var (
	configLocation  = location{"config", "config", mo.Some("c"), where.Config}
	logsLocation    = location{"logs", "logs", mo.Some("l"), where.Logs}
	cacheLocation   = location{"cache directory", "cache", mo.None[string](), where.Cache}
	historyLocation = location{"rooms history", "history", mo.Some("r"), where.History}
	versionLocation = location{"version cache", "version", mo.None[string](), where.Version}
)

func (l location) bind(cmd *cobra.Command, usage string) {
	short, _ := l.short.Get()
	cmd.Flags().BoolP(l.flag, short, false, usage)
}

func (l location) selected(cmd *cobra.Command) bool {
	return lo.Must(cmd.Flags().GetBool(l.flag))
}

func flagsOf(locations []location) []string {
	return lo.Map(locations, func(l location, _ int) string { return l.flag })
}
