package cli

import (
	"regexp"
	"strconv"
	"strings"

	apperrors "github.com/agbru/lagcalc/internal/errors"
	"github.com/agbru/lagcalc/internal/overlay"
)

// Kind identifies a session command.
type Kind int

const (
	KindPoint Kind = iota + 1
	KindEvaluate
	KindOverlay
	KindHelp
	KindView
	KindCompute
	KindDelete
	KindQuit
)

var kindNames = map[Kind]string{
	KindPoint:    "point",
	KindEvaluate: "evaluate",
	KindOverlay:  "overlay",
	KindHelp:     "help",
	KindView:     "view",
	KindCompute:  "compute",
	KindDelete:   "delete",
	KindQuit:     "quit",
}

// String returns the metrics label of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// Command is a parsed console line.
type Command struct {
	Kind Kind
	// X and Y hold the point for KindPoint; X holds the abscissa for
	// KindEvaluate.
	X, Y float64
	// Overlay holds the requested id for KindOverlay. It is not range
	// checked here.
	Overlay overlay.ID
}

var (
	// numberPattern is the single numeric grammar for coordinates.
	numberPattern  = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)
	integerPattern = regexp.MustCompile(`^[+-]?\d+$`)
)

var letterCommands = map[string]Kind{
	"h": KindHelp,
	"v": KindView,
	"c": KindCompute,
	"d": KindDelete,
	"q": KindQuit,
}

// ParseCommand matches a line against the command rules in order: a point
// ("x y"), an evaluation ("x <number>"), an overlay selection
// ("o <integer>"), then the single-letter commands. Letters are
// case-insensitive and tokens are separated by any whitespace. A line
// matching no rule yields a *apperrors.MalformedInputError.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	malformed := &apperrors.MalformedInputError{Input: line}

	switch len(fields) {
	case 2:
		head, arg := strings.ToLower(fields[0]), fields[1]
		if numberPattern.MatchString(head) && numberPattern.MatchString(arg) {
			x, errX := parseNumber(head)
			y, errY := parseNumber(arg)
			if errX != nil || errY != nil {
				return Command{}, malformed
			}
			return Command{Kind: KindPoint, X: x, Y: y}, nil
		}
		switch {
		case head == "x" && numberPattern.MatchString(arg):
			x, err := parseNumber(arg)
			if err != nil {
				return Command{}, malformed
			}
			return Command{Kind: KindEvaluate, X: x}, nil
		case head == "o" && integerPattern.MatchString(arg):
			id, err := strconv.Atoi(arg)
			if err != nil {
				return Command{}, malformed
			}
			return Command{Kind: KindOverlay, Overlay: overlay.ID(id)}, nil
		}
	case 1:
		if kind, ok := letterCommands[strings.ToLower(fields[0])]; ok {
			return Command{Kind: kind}, nil
		}
	}
	return Command{}, malformed
}

// parseNumber converts a token already matched by numberPattern. Values
// beyond the float64 range are rejected.
func parseNumber(tok string) (float64, error) {
	return strconv.ParseFloat(tok, 64)
}
