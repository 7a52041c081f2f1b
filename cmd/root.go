// Package cmd implements the command-line interface for touchmpv.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/touchmpv/touchmpv/color"
	"github.com/touchmpv/touchmpv/constant"
	"github.com/touchmpv/touchmpv/icon"
	"github.com/touchmpv/touchmpv/key"
	"github.com/touchmpv/touchmpv/log"
	"github.com/touchmpv/touchmpv/player"
	"github.com/touchmpv/touchmpv/style"
	"github.com/touchmpv/touchmpv/surface"
	"github.com/touchmpv/touchmpv/tui"
	"github.com/touchmpv/touchmpv/version"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().BoolP("demo", "d", false, "Drive a simulated engine instead of mpv")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("socket", "s", "", "Attach to a running mpv listening on this IPC socket")
	lo.Must0(viper.BindPFlag(key.PlayerSocket, rootCmd.PersistentFlags().Lookup("socket")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for touchmpv.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [file]",
	Short: "Touch-style playback controls for mpv",
	Long: style.Title(constant.App) + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Drag to scrub, hold for 2X, swipe to skip, tap to pause"),
	Args: cobra.MaximumNArgs(1),
	Example: "  " + constant.App + " movie.mkv\n" +
		"  " + constant.App + " --socket /tmp/mpv.sock\n" +
		"  " + constant.App + " --demo",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			Surface:    surface.OptionsFromConfig(),
			CellWidth:  viper.GetFloat64(key.TUICellWidth),
			CellHeight: viper.GetFloat64(key.TUICellHeight),
		}

		if lo.Must(cmd.Flags().GetBool("demo")) {
			options.Player = demoPlayer(args)
			handleErr(tui.Run(options))
			return
		}

		mpv, err := openPlayer(args)
		handleErr(err)
		defer func() {
			if err := mpv.Close(); err != nil {
				log.Warn(err)
			}
		}()

		options.Player = mpv
		options.Listen = func(cb player.EventCallback) (func(), error) {
			listener := player.NewEventListener(mpv.Socket(), mpv.Observe(), cb)
			if err := listener.Start(); err != nil {
				return nil, err
			}
			return listener.Stop, nil
		}

		// an attached mpv outlives us, only a spawned one can end the session
		if viper.GetString(key.PlayerSocket) == "" {
			options.Exited = mpv.Wait()
		}

		if err := tui.Run(options); err != nil {
			log.Error(err)
			_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), err)
		}
	},
}

// playerOptions assembles the mpv configuration from viper.
func playerOptions() (player.Options, error) {
	initOptions, err := player.ParseOptions(viper.GetStringSlice(key.PlayerInitOptions))
	if err != nil {
		return player.Options{}, fmt.Errorf("%s: %w", key.PlayerInitOptions, err)
	}

	postInitOptions, err := player.ParseOptions(viper.GetStringSlice(key.PlayerPostInitOptions))
	if err != nil {
		return player.Options{}, fmt.Errorf("%s: %w", key.PlayerPostInitOptions, err)
	}

	return player.Options{
		Binary:          viper.GetString(key.PlayerBinary),
		Socket:          viper.GetString(key.PlayerSocket),
		InitOptions:     initOptions,
		PostInitOptions: postInitOptions,
		Observe:         viper.GetStringSlice(key.PlayerObserve),
	}, nil
}

// openPlayer attaches to the configured socket, or launches mpv on the file argument.
func openPlayer(args []string) (*player.MPV, error) {
	options, err := playerOptions()
	if err != nil {
		return nil, err
	}

	mpv := player.NewMPV(options)

	if options.Socket != "" {
		return mpv, mpv.Attach()
	}

	if len(args) == 0 {
		return nil, errors.New("a file to play is required, or use --socket / --demo")
	}

	CheckDependencies(options.Binary)
	return mpv, mpv.Launch(args[0])
}

func demoPlayer(args []string) *player.Simulated {
	media := player.Media{
		Title:    "Video",
		Path:     "demo.mkv",
		Duration: 596,
		Audio:    2,
		Subs:     2,
	}

	if len(args) > 0 {
		media.Path = filepath.Base(args[0])
	}

	sim := player.NewSimulated(nil, media)
	sim.SetPaused(false)
	return sim
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
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
