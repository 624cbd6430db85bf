/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/allbin/ptt"
	"github.com/allbin/ptt/internal/tui/styles"
)

// newPortsCmd lists the port index to I/O address table
func (a *app) newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List serial port indices and their I/O addresses",
		Long: `List the serial port indices accepted by --port, the device name
each one corresponds to, its UART base address and Modem Control Register
address, and whether the device node exists on this system.

Indices 0-3 are the legacy ISA COM1-COM4 addresses; 4-7 are addresses
typical of PCI multi-port cards and may differ on your hardware.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			renderPortTable(out, ptt.Ports(), a.plain)

			// Device nodes beyond the table are listed but cannot be addressed.
			devices, err := ptt.ListPorts()
			if err != nil {
				return fmt.Errorf("failed to list ports: %w", err)
			}
			known := make(map[string]bool)
			for _, info := range ptt.Ports() {
				known[info.Device] = true
			}
			for _, device := range devices {
				if !known[device] {
					fmt.Fprintf(out, "%s present but has no address table entry\n", device)
				}
			}
			return nil
		},
	}
}

// renderPortTable renders the port list in a static table
func renderPortTable(out io.Writer, infos []ptt.PortInfo, plain bool) {
	columns := []table.Column{
		{Title: "Port", Width: 4},
		{Title: "Device", Width: 12},
		{Title: "Base", Width: 7},
		{Title: "MCR", Width: 7},
		{Title: "Present", Width: 7},
	}

	rows := make([]table.Row, 0, len(infos))
	for _, info := range infos {
		present := "no"
		if info.Present {
			present = "yes"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(info.Port),
			info.Device,
			info.Base.String(),
			info.MCR.String(),
			present,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Selected = lipgloss.NewStyle()
	if !plain {
		s.Header = styles.HeaderStyle.Padding(0, 1)
	}
	t.SetStyles(s)
	// SetHeight counts the header, which is taller when it has a border.
	t.SetHeight(len(rows) + lipgloss.Height(s.Header.Render(columns[0].Title)))

	fmt.Fprintln(out, t.View())
}
