// Package cmd implements the command-line interface for mpvlink.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mpvlink-cli/mpvlink/config"
	"github.com/mpvlink-cli/mpvlink/constant"
	"github.com/mpvlink-cli/mpvlink/dispatch"
	"github.com/mpvlink-cli/mpvlink/key"
	"github.com/mpvlink-cli/mpvlink/log"
	"github.com/mpvlink-cli/mpvlink/player"
	"github.com/mpvlink-cli/mpvlink/protocol"
	"github.com/mpvlink-cli/mpvlink/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.Flags().BoolP("enqueue", "e", false, "Queue onto a running player instead of launching a new one")
	rootCmd.Flags().StringP("quality", "q", "", "Preferred stream quality (e.g. 720p)")
	rootCmd.Flags().String("vcodec", "", "Preferred video codec (e.g. vp9)")
	rootCmd.Flags().StringP("title", "t", "", "Override the display title")
	rootCmd.Flags().String("profile", "", "Player configuration profile to apply")
	rootCmd.Flags().String("cookies", "", "Cookies file name under the cookies directory")
	rootCmd.Flags().String("sub-file", "", "Subtitle file URL to load alongside the stream")
	rootCmd.Flags().String("start", "", "Playback start offset in seconds")

	rootCmd.Flags().Bool("no-confirm", false, "Skip the playlist fetch-count question")
}

// rootCmd defines the entry point for the mpvlink application.
var rootCmd = &cobra.Command{
	Use:   constant.Mpvlink + " <link-or-url>",
	Short: "Hand mpv:// links and stream URLs to a running or freshly launched player",
	Long: "Dispatch playback intents to mpv: decode mpv:// handler links (or take a plain URL\n" +
		"with flags), resolve streams and playlists through yt-dlp, then either enqueue onto\n" +
		"a running instance over its control socket or launch and supervise a new one.",
	Args:    cobra.MaximumNArgs(1),
	Example: "  " + constant.Mpvlink + " 'https://example.com/watch?v=1' -q 720p --vcodec vp9\n" +
		"  " + constant.Mpvlink + " -e 'mpv://play/aHR0cHM6Ly9leGFtcGxlLmNvbQ==/?enqueue=1'",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}
		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		if lo.Must(cmd.Flags().GetBool("no-confirm")) {
			viper.Set(key.ConfirmEnabled, false)
		}

		intent, err := intentFromArg(cmd, args[0])
		handleErr(err)

		if intent.Scheme == protocol.SchemeDebug {
			log.ForceDebug()
		}

		handleErr(dispatch.New(config.Resolve()).Run(intent))
	},
}

// intentFromArg builds the playback intent: handler links decode themselves,
// plain URLs take their options from the flag set.
func intentFromArg(cmd *cobra.Command, raw string) (protocol.Intent, error) {
	if protocol.IsHandlerLink(raw) {
		return protocol.Parse(raw)
	}

	flag := func(name string) mo.Option[string] {
		if v := lo.Must(cmd.Flags().GetString(name)); v != "" {
			return mo.Some(v)
		}
		return mo.None[string]()
	}

	return protocol.Intent{
		URL:     raw,
		Enqueue: lo.Must(cmd.Flags().GetBool("enqueue")),
		Cookies: flag("cookies"),
		Profile: flag("profile"),
		Quality: flag("quality"),
		VCodec:  flag("vcodec"),
		Title:   flag("title"),
		SubFile: flag("sub-file"),
		StartAt: flag("start"),
	}, nil
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err == nil {
		return
	}
	log.Error(err)

	// A player exit status terminates the whole invocation with that status.
	var exit *player.ExitError
	if errors.As(err, &exit) {
		_, _ = fmt.Fprintf(os.Stderr, "%s\n", style.Fg(style.Red)(err.Error()))
		os.Exit(exit.Code)
	}

	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(style.Red)("✗"), strings.Trim(err.Error(), " \n"))
	os.Exit(1)
}
