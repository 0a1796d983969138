package cli

import (
	"fmt"
	"io"

	"github.com/agbru/lagcalc/internal/overlay"
	"github.com/agbru/lagcalc/internal/ui"
)

// Divider is the fixed-width separator framing every report.
const Divider = "--------------------------------"

func printDivider(out io.Writer) {
	fmt.Fprintf(out, "%s%s%s\n", ui.ColorGrey(), Divider, ui.ColorReset())
}

func (s *Session) printBanner() {
	fmt.Fprintf(s.out, "%sWelcome to the Lagrange polynomial calculator.%s To see the list of commands, type %s\"h\"%s. To quit, type %s\"q\"%s.\n",
		ui.ColorBold(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
	printDivider(s.out)
}

// helpLines pairs each command syntax with its description.
var helpLines = [][2]string{
	{"0 0", "add point (input two numbers separated by spaces)"},
	{"x 0", "evaluate the last computed polynomial at x"},
	{"o 0", "select the overlay curve (0 removes it)"},
	{"d", "delete all points"},
	{"v", "view the entered points"},
	{"c", "calculate the polynomial"},
	{"h", "display this message"},
	{"q", "quit"},
}

func (s *Session) printHelp() {
	printDivider(s.out)
	fmt.Fprintf(s.out, "%sCommand list:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, l := range helpLines {
		fmt.Fprintf(s.out, "  %s%-4s%s -- %s\n", ui.ColorYellow(), l[0], ui.ColorReset(), l[1])
	}
	fmt.Fprintf(s.out, "%sOverlays:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, o := range overlay.All() {
		marker := "  "
		if o.ID == s.overlay {
			marker = ui.ColorGreen() + "► " + ui.ColorReset()
		}
		fmt.Fprintf(s.out, "%s%s\n", marker, o)
	}
	printDivider(s.out)
}
