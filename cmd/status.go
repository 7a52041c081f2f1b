package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"text/template"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/touchmpv/touchmpv/color"
	"github.com/touchmpv/touchmpv/icon"
	"github.com/touchmpv/touchmpv/key"
	"github.com/touchmpv/touchmpv/player"
	"github.com/touchmpv/touchmpv/style"
	"github.com/touchmpv/touchmpv/surface"
	"github.com/touchmpv/touchmpv/timefmt"
)

// Status is the output of the status command.
type Status struct {
	Title    string          `json:"title" jsonschema:"description=Media title without extension, falling back to the file name."`
	Path     string          `json:"path,omitempty" jsonschema:"description=Path or URL of the loaded media."`
	Time     string          `json:"time" jsonschema:"description=Formatted position."`
	Total    string          `json:"total" jsonschema:"description=Formatted duration."`
	Playback player.Snapshot `json:"playback"`
}

func statusOf(f player.Facade) Status {
	snapshot := player.Read(f)

	return Status{
		Title:    surface.VideoTitle(f),
		Path:     f.Path().OrElse(""),
		Time:     timefmt.Format(snapshot.Position),
		Total:    timefmt.Format(snapshot.Duration),
		Playback: snapshot,
	}
}

var statusTemplate = lo.Must(template.New("status").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"purple": style.Fg(color.Purple),
	"state": func(paused bool) string {
		if paused {
			return icon.Get(icon.Pause) + " paused"
		}
		return icon.Get(icon.Play) + " playing"
	},
}).Parse(`{{ purple .Title }}
  {{ faint "Position" }}  {{ bold .Time }} / {{ bold .Total }}
  {{ faint "State" }}     {{ state .Playback.Paused }}
  {{ faint "Speed" }}     {{ bold (printf "%gX" .Playback.Speed) }}
`))

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	statusCmd.SetOut(os.Stdout)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what a running mpv is playing",
	Long:  "Attach to the mpv socket given by --socket (or " + key.PlayerSocket + ") and print its playback state.",
	Run: func(cmd *cobra.Command, args []string) {
		if viper.GetString(key.PlayerSocket) == "" {
			handleErr(errors.New("no socket given, use --socket"))
		}

		options, err := playerOptions()
		handleErr(err)

		// read-only: leave the running instance's properties alone
		options.PostInitOptions = nil

		mpv := player.NewMPV(options)
		if err := mpv.Attach(); err != nil {
			handleErr(fmt.Errorf("status: %w", err))
		}

		status := statusOf(mpv)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(status))
			return
		}

		handleErr(statusTemplate.Execute(cmd.OutOrStdout(), status))
	},
}

func init() {
	statusCmd.AddCommand(statusSchemaCmd)
	statusSchemaCmd.SetOut(os.Stdout)
}

func statusSchema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		return strings.ToLower(t.Name())
	}

	return reflector.Reflect(&Status{})
}

var statusSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of status --json",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(statusSchema()))
	},
}
