/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/allbin/ptt"
	"github.com/allbin/ptt/internal/config"
)

var lineDescriptions = map[ptt.ControlLine]string{
	ptt.LineDTR: "DTR (Data Terminal Ready)",
	ptt.LineRTS: "RTS (Request To Send)",
}

// newLineCmd returns a shortcut command that keys or unkeys a single line,
// equivalent to --line <LINE> with a word or digit for the state.
func (a *app) newLineCmd(line ptt.ControlLine) *cobra.Command {
	name := strings.ToLower(line.String())
	return &cobra.Command{
		Use:   name + " <state>",
		Short: fmt.Sprintf("Key or unkey using only the %s line", line),
		Long: fmt.Sprintf(`Set the %[1]s line of the configured port, leaving every
other Modem Control Register bit as it is.

Examples:
  sudo ptt %[2]s on
  sudo ptt %[2]s off --port 1
  sudo ptt %[2]s high -d /dev/ttyS2

Valid states: high, low, on, off, true, false, 1, 0`, lineDescriptions[line], name),
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := config.ParseSignalState(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, config.Layer{
				Name:  name + " command",
				Line:  config.Value(line),
				Lines: config.Value(line.Lines()),
				State: config.Value(state),
			})
		},
	}
}
