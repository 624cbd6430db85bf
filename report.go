package ptt

import (
	"fmt"

	"github.com/allbin/ptt/internal/tui/styles"
)

// phase labels the point in a run a report describes.
type phase string

const (
	phaseWas     phase = "was"
	phaseDesired phase = "desired"
	phaseNow     phase = "now"
)

// report prints the state of each control line in v for one phase. The
// desired phase also lists lines the selector leaves alone.
func (c *Controller) report(p phase, l ControlLine, v byte) {
	for _, m := range []byte{MaskDTR, MaskRTS} {
		label := fmt.Sprintf("PTT (%s) %s:", MaskName(m), p)
		if c.styled {
			label = styles.LabelStyle.Render(label)
		}

		if l.Mask()&m == 0 {
			if p != phaseDesired {
				continue
			}
			state := "unchanged"
			if c.styled {
				state = styles.StateUnchangedStyle.Render(state)
			}
			fmt.Fprintf(c.out, "%s %s\n", label, state)
			continue
		}

		fmt.Fprintf(c.out, "%s %s\n", label, styles.FormatState(IsSet(v, m), c.styled))
	}
}
