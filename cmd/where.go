package cmd

import (
	"os"

	"github.com/bililink-cli/bililink/color"
	"github.com/bililink-cli/bililink/style"
	"github.com/bililink-cli/bililink/util"
	"github.com/spf13/cobra"
)

var whereLocations = []location{configLocation, logsLocation, cacheLocation, historyLocation}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range whereLocations {
		l.bind(whereCmd, "print the "+l.name+" path")
	}
	whereCmd.MarkFlagsMutuallyExclusive(flagsOf(whereLocations)...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where settings, logs and caches are stored",
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range whereLocations {
			if l.selected(cmd) {
				cmd.Println(l.path())
				return
			}
		}

		title := style.New().Bold(true).Foreground(color.HiPurple).Render
		flag := style.Fg(color.Yellow)

		for i, l := range whereLocations {
			if i > 0 {
				cmd.Println()
			}
			cmd.Println(title(util.Capitalize(l.name)), flag("--"+l.flag))
			cmd.Println(l.path())
		}
	},
}
