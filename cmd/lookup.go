package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bililink-cli/bililink/bilibili"
	"github.com/bililink-cli/bililink/constant"
	"github.com/bililink-cli/bililink/filesystem"
	"github.com/bililink-cli/bililink/history"
	"github.com/bililink-cli/bililink/icon"
	"github.com/bililink-cli/bililink/key"
	"github.com/bililink-cli/bililink/locale"
	"github.com/bililink-cli/bililink/log"
	"github.com/bililink-cli/bililink/open"
	"github.com/bililink-cli/bililink/output"
	"github.com/bililink-cli/bililink/prompt"
	"github.com/bililink-cli/bililink/resolve"
	"github.com/bililink-cli/bililink/stream"
	"github.com/bililink-cli/bililink/style"
	"github.com/bililink-cli/bililink/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type lookupOptions struct {
	resolve.Options

	JSON   bool
	Output string
	Open   bool

	prompter prompt.Prompter
	client   *bilibili.Client
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
}

func lookupOptionsFrom(cmd *cobra.Command) *lookupOptions {
	optional := func(name string) mo.Option[string] {
		if !cmd.Flags().Changed(name) {
			return mo.None[string]()
		}
		return mo.Some(lo.Must(cmd.Flags().GetString(name)))
	}

	return &lookupOptions{
		Options: resolve.Options{
			RoomID:  optional("room-id"),
			Quality: optional("quality"),
			Format:  optional("format"),
		},
		JSON:     lo.Must(cmd.Flags().GetBool("json")),
		Output:   lo.Must(cmd.Flags().GetString("output")),
		Open:     lo.Must(cmd.Flags().GetBool("open")),
		prompter: prompt.Default(),
		client:   bilibili.New(),
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// lookup resolves the request, fetches the room and prints the matching urls.
// Nothing is printed unless fetching and flattening both succeeded.
func lookup(ctx context.Context, opts *lookupOptions) error {
	interactive := opts.Interactive()

	if interactive {
		fmt.Fprintf(opts.stdout, "%s %s\n\n", style.Title(constant.App), style.Faint(constant.Version))
	}

	req, err := resolve.Resolve(ctx, opts.prompter, opts.Options)
	if err != nil {
		return err
	}

	logger := log.WithField("room", req.RoomID.String())

	if interactive {
		fmt.Fprintf(opts.stdout, "%s %s\n\n", icon.Get(icon.Progress), locale.T(locale.Fetching))
	}

	streams, err := opts.client.Fetch(ctx, req.RoomID, req.Quality)
	if err != nil {
		return err
	}

	candidates, err := stream.Collect(streams)
	if err != nil {
		return err
	}

	matched := stream.Filter(candidates, req.Format)
	logger.Infof("%s match %s", util.Quantify(len(matched), "stream", "streams"), req.Format)

	if err := history.Remember(req.RoomID); err != nil {
		logger.Warnf("remember room: %v", err)
	}

	if err := writeOutput(opts, output.New(req.RoomID, req.Quality, req.Format, matched)); err != nil {
		return err
	}

	if len(matched) == 0 && interactive {
		fmt.Fprintf(opts.stderr, "%s %s\n", icon.Get(icon.Mark), locale.T(locale.NoStreams, req.Format))
	}

	if opts.Open && len(matched) > 0 {
		fmt.Fprintf(opts.stderr, "%s %s\n", icon.Get(icon.Player), locale.T(locale.Opening, matched[0].URL))
		if err := open.Stream(matched[0].URL); err != nil {
			return err
		}
	}

	if interactive && viper.GetBool(key.CliPauseOnExit) {
		return util.Pause(ctx, opts.stdin, opts.stdout, locale.T(locale.PressAnyKey))
	}

	return nil
}

func writeOutput(opts *lookupOptions, o *output.Output) error {
	if opts.Output == "" {
		return output.Write(opts.stdout, o, opts.JSON)
	}

	file, err := filesystem.API().Create(opts.Output)
	if err != nil {
		return err
	}

	defer util.Ignore(file.Close)

	if err := output.Write(file, o, opts.JSON); err != nil {
		return err
	}

	fmt.Fprintf(opts.stderr, "%s %s\n", icon.Get(icon.Success), locale.T(locale.WrittenTo, opts.Output))
	return nil
}
