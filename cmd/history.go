package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bililink-cli/bililink/history"
	"github.com/bililink-cli/bililink/icon"
	"github.com/bililink-cli/bililink/live"
	"github.com/bililink-cli/bililink/locale"
	"github.com/bililink-cli/bililink/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Print the rooms as JSON")
	historyCmd.Flags().StringP("remove", "d", "", "Forget a room")
	lo.Must0(historyCmd.RegisterFlagCompletionFunc("remove", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return history.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently resolved rooms, most used first",
	Run: func(cmd *cobra.Command, args []string) {
		if raw := lo.Must(cmd.Flags().GetString("remove")); raw != "" {
			id, err := live.ParseRoomID(raw)
			handleErr(err)
			handleErr(history.Remove(id))
			fmt.Printf("%s %s\n", icon.Get(icon.Success), id)
			return
		}

		rooms, err := history.List()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(rooms))
			return
		}

		if len(rooms) == 0 {
			cmd.Println(style.Faint(locale.T(locale.NoRecentRooms)))
			return
		}

		cmd.Println(style.Title(locale.T(locale.RecentRooms)))
		for _, room := range rooms {
			cmd.Printf(
				"%s %-12s %s %s\n",
				icon.Get(icon.Room),
				room.ID,
				style.Faint(fmt.Sprintf("×%d", room.Count)),
				style.Faint(room.ID.URL()),
			)
		}
	},
}
