package version

import (
	"context"
	"fmt"
	"os"

	"github.com/bililink-cli/bililink/color"
	"github.com/bililink-cli/bililink/constant"
	"github.com/bililink-cli/bililink/icon"
	"github.com/bililink-cli/bililink/key"
	"github.com/bililink-cli/bililink/style"
	"github.com/bililink-cli/bililink/util"
	"github.com/spf13/viper"
)

// Notify prints a notice to stderr when a newer release than the running build exists.
func Notify(ctx context.Context) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(version, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Fprintf(os.Stderr, `
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint(fmt.Sprintf("https://github.com/%s/releases/tag/v%s", constant.Repository, version)),
	)
}
