package version

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"
	"github.com/touchmpv/touchmpv/color"
	"github.com/touchmpv/touchmpv/constant"
	"github.com/touchmpv/touchmpv/key"
	"github.com/touchmpv/touchmpv/log"
	"github.com/touchmpv/touchmpv/style"
)

// Notify prints a notice when a newer release exists. Lookup failures are only logged.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	latest, err := Latest()
	if err != nil {
		log.Debugf("version check: %v", err)
		return
	}

	notify(os.Stdout, latest, constant.Version)
}

func notify(w io.Writer, latest, current string) bool {
	if comp, err := Compare(latest, current); err != nil || comp <= 0 {
		return false
	}

	_, _ = fmt.Fprintf(w, `
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", current)),
		style.Faint("https://github.com/"+constant.Repository+"/releases/tag/v"+latest),
	)

	return true
}
