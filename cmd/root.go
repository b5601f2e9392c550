// Package cmd implements the command-line interface of bililink.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/bililink-cli/bililink/constant"
	"github.com/bililink-cli/bililink/history"
	"github.com/bililink-cli/bililink/icon"
	"github.com/bililink-cli/bililink/key"
	"github.com/bililink-cli/bililink/live"
	"github.com/bililink-cli/bililink/locale"
	"github.com/bililink-cli/bililink/log"
	"github.com/bililink-cli/bililink/style"
	"github.com/bililink-cli/bililink/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.Flags().StringP("room-id", "r", "", "Live room number or room url, e.g. https://live.bilibili.com/21452505")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("room-id", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return history.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))

	rootCmd.Flags().StringP("quality", "q", "", "Quality tier: low or high")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("quality", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(live.Qualities(), func(q live.Quality, _ int) string { return q.String() }), cobra.ShellCompDirectiveNoFileComp
	}))

	rootCmd.Flags().StringP("format", "f", "", "Container format: m3u8 or flv")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(live.Formats(), func(f live.Format, _ int) string { return f.String() }), cobra.ShellCompDirectiveNoFileComp
	}))

	rootCmd.Flags().BoolP("json", "j", false, "Print the result as JSON with stream metadata")
	rootCmd.Flags().StringP("output", "o", "", "Write the result to a file instead of stdout")
	rootCmd.Flags().BoolP("open", "O", false, "Open the first matching stream in the configured player")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icon variant: "+strings.Join(icon.AvailableVariants(), ", "))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("language", "L", "", "Message language: "+strings.Join(locale.Languages(), ", "))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("language", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return locale.Languages(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.CliLanguage, rootCmd.PersistentFlags().Lookup("language")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(context.Background())
	})
}

// rootCmd resolves a live room into its stream urls.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Resolve Bilibili live rooms into playable stream urls",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(style.Accent).Render("    - Resolve Bilibili live rooms into playable stream urls"),
	Example: fmt.Sprintf(`  %[1]s
  %[1]s --room-id 21452505 --quality high --format m3u8
  %[1]s -r https://live.bilibili.com/21452505 -q low -f flv --json`, constant.App),
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(lookup(cmd.Context(), lookupOptionsFrom(cmd)))
	},
}

// Execute runs the command tree. Ctrl-C cancels the context of the running command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiMagenta + cc.Bold + cc.Underline,
			Commands:      cc.HiCyan + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(locale.Describe(err), " \n"))
		os.Exit(1)
	}
}
