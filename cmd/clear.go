package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/bililink-cli/bililink/icon"
	"github.com/bililink-cli/bililink/util"
	"github.com/spf13/cobra"
)

var clearLocations = []location{historyLocation, versionLocation, logsLocation, cacheLocation}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, l := range clearLocations {
		l.bind(clearCmd, "delete the "+l.name)
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete cached files, logs or the rooms history",
	Run: func(cmd *cobra.Command, args []string) {
		var cleared int

		for _, l := range clearLocations {
			if !l.selected(cmd) {
				continue
			}

			erase := util.PrintErasable(fmt.Sprintf("%s Deleting %s...", icon.Get(icon.Progress), l.name))
			err := util.Delete(l.path())
			erase()

			if err != nil && !errors.Is(err, os.ErrNotExist) {
				handleErr(err)
			}

			cleared++
			fmt.Printf("%s %s deleted\n", icon.Get(icon.Success), util.Capitalize(l.name))
		}

		if cleared == 0 {
			handleErr(cmd.Help())
		}
	},
}
