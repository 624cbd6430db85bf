/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/evertras/bubble-table/table"
	"github.com/spf13/cobra"

	"github.com/allbin/ptt"
	"github.com/allbin/ptt/internal/tui/styles"
)

// mcrSignals are the Modem Control Register bits shown by status, low bit first.
var mcrSignals = []struct {
	mask        byte
	description string
}{
	{ptt.MaskDTR, "Data Terminal Ready"},
	{ptt.MaskRTS, "Request To Send"},
	{ptt.MaskOUT1, "User output 1"},
	{ptt.MaskOUT2, "User output 2 (IRQ enable)"},
	{ptt.MaskLoop, "Loopback"},
}

const (
	columnKeyBit    = "bit"
	columnKeySignal = "signal"
	columnKeyState  = "state"
	columnKeyDesc   = "description"
)

// newStatusCmd displays the MCR without changing it
func (a *app) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Display the current Modem Control Register state",
		Long: `Read the Modem Control Register of the configured port and display
the state of its output signals. The register is not modified.

Examples:
  sudo ptt status
  sudo ptt status --port 1

Signal meanings:
  DTR  - Data Terminal Ready (output)
  RTS  - Request To Send (output)
  OUT1 - User output 1
  OUT2 - User output 2, gates the UART interrupt on PC hardware
  LOOP - Loopback test mode`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, ctrl, cleanup, err := a.setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := ctrl.Status(cfg)
			if err != nil {
				return err
			}
			renderStatus(cmd.OutOrStdout(), cfg, res, a.plain)
			return nil
		},
	}
}

func renderStatus(out io.Writer, cfg ptt.Config, res ptt.Result, plain bool) {
	fmt.Fprintf(out, "Modem Control Register for %s at %s: 0x%02X\n\n", cfg.Device, res.Address, res.Before)

	columns := []table.Column{
		table.NewColumn(columnKeyBit, "Bit", 5),
		table.NewColumn(columnKeySignal, "Signal", 8),
		table.NewColumn(columnKeyState, "State", 7),
		table.NewColumn(columnKeyDesc, "Description", 28),
	}

	rows := make([]table.Row, 0, len(mcrSignals))
	for bit, sig := range mcrSignals {
		rows = append(rows, table.NewRow(table.RowData{
			columnKeyBit:    fmt.Sprintf("%d", bit),
			columnKeySignal: ptt.MaskName(sig.mask),
			columnKeyState:  styles.FormatState(ptt.IsSet(res.Before, sig.mask), !plain),
			columnKeyDesc:   sig.description,
		}))
	}

	t := table.New(columns).WithRows(rows).BorderRounded()
	if !plain {
		t = t.HeaderStyle(styles.LabelStyle.Bold(true))
	}
	fmt.Fprintln(out, t.View())
}
