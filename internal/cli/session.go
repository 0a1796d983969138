// Package cli provides the interactive session: a line-oriented command
// loop that collects points, builds the Lagrange interpolant and hands it
// to a render sink.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	apperrors "github.com/agbru/lagcalc/internal/errors"
	"github.com/agbru/lagcalc/internal/format"
	"github.com/agbru/lagcalc/internal/lagrange"
	"github.com/agbru/lagcalc/internal/logging"
	"github.com/agbru/lagcalc/internal/metrics"
	"github.com/agbru/lagcalc/internal/overlay"
	"github.com/agbru/lagcalc/internal/plot"
	"github.com/agbru/lagcalc/internal/points"
	"github.com/agbru/lagcalc/internal/poly"
	"github.com/agbru/lagcalc/internal/ui"
)

// Metrics receives session activity. *metrics.Recorder implements it.
type Metrics interface {
	CommandHandled(kind string)
	InterpolationFinished(outcome string, degree int)
	RenderFinished(err error)
}

type nopMetrics struct{}

func (nopMetrics) CommandHandled(string)             {}
func (nopMetrics) InterpolationFinished(string, int) {}
func (nopMetrics) RenderFinished(error)              {}

// Session holds the state of one interactive run: the entered points, the
// last computed polynomial and the selected overlay.
type Session struct {
	in       io.Reader
	out      io.Writer
	renderer plot.Renderer
	builder  *lagrange.Builder
	logger   logging.Logger
	metrics  Metrics
	verbose  bool
	shared   bool

	points  points.Set
	last    poly.Polynomial
	overlay overlay.ID
}

// Option configures a Session.
type Option func(*Session)

// WithInput sets the command source.
func WithInput(in io.Reader) Option { return func(s *Session) { s.in = in } }

// WithOutput sets the console output.
func WithOutput(out io.Writer) Option { return func(s *Session) { s.out = out } }

// WithRenderer sets the render sink used by the compute command.
func WithRenderer(r plot.Renderer) Option { return func(s *Session) { s.renderer = r } }

// WithBuilder sets the interpolant builder.
func WithBuilder(b *lagrange.Builder) Option { return func(s *Session) { s.builder = b } }

// WithLogger sets the diagnostic logger.
func WithLogger(l logging.Logger) Option { return func(s *Session) { s.logger = l } }

// WithMetrics sets the activity recorder.
func WithMetrics(m Metrics) Option { return func(s *Session) { s.metrics = m } }

// WithVerbose prints the build time after each computation.
func WithVerbose(v bool) Option { return func(s *Session) { s.verbose = v } }

// WithSharedInput reads commands without read-ahead, for when the render
// sink reads keys from the same input.
func WithSharedInput(shared bool) Option { return func(s *Session) { s.shared = shared } }

// WithOverlay selects the overlay active at start. Invalid ids are ignored.
func WithOverlay(id overlay.ID) Option {
	return func(s *Session) {
		if overlay.Valid(id) {
			s.overlay = id
		}
	}
}

// NewSession creates a session reading stdin and writing stdout, with no
// render sink.
func NewSession(opts ...Option) *Session {
	s := &Session{
		in:       os.Stdin,
		out:      os.Stdout,
		renderer: plot.NullRenderer{},
		logger:   logging.NewNopLogger(),
		metrics:  nopMetrics{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.builder == nil {
		s.builder = lagrange.NewBuilder()
	}
	return s
}

// Points returns a copy of the entered points.
func (s *Session) Points() []points.Point { return s.points.All() }

// LastPolynomial returns a copy of the last computed polynomial, or nil.
func (s *Session) LastPolynomial() poly.Polynomial { return s.last.Clone() }

// Overlay returns the selected overlay id.
func (s *Session) Overlay() overlay.ID { return s.overlay }

type lineResult struct {
	line string
	err  error
}

// Start prints the banner and runs the command loop until "q", the end of
// input or the cancellation of ctx.
func (s *Session) Start(ctx context.Context) {
	s.printBanner()

	var reader lineReader = bufio.NewReader(s.in)
	if s.shared {
		reader = newUnbufferedReader(s.in)
	}
	for {
		fmt.Fprint(s.out, ui.ColorGreen()+"> "+ui.ColorReset())

		line, err := s.readLine(ctx, reader)
		if err != nil && !errors.Is(err, io.EOF) {
			if apperrors.IsContextError(err) {
				s.logger.Debug("session canceled")
			} else {
				s.logger.Error("reading input", err)
			}
			fmt.Fprintln(s.out, "\nGoodbye!")
			return
		}
		if line != "" && !s.Execute(ctx, line) {
			return
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out, "\nGoodbye!")
			return
		}
	}
}

// readLine performs one blocking read. The read runs on its own goroutine
// only so that cancellation of ctx can end the session; no read is
// pending while a command executes, so an interactive render sink owns
// the input in the meantime.
//
// Reads cannot be interrupted: after cancellation the goroutine stays
// blocked until the input yields a line or closes. The session is over by
// then and the process exits, so it is left behind.
func (s *Session) readLine(ctx context.Context, r lineReader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ch := make(chan lineResult, 1)
	go func() {
		line, err := r.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		return res.line, res.err
	}
}

// Execute handles one console line and reports whether the session should
// continue. Blank lines are ignored.
func (s *Session) Execute(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	s.logger.Debug("command", logging.String("line", line))

	cmd, err := ParseCommand(line)
	s.metrics.CommandHandled(cmd.Kind.String())
	if err != nil {
		s.report(err)
		return true
	}

	switch cmd.Kind {
	case KindPoint:
		s.points.Add(points.Point{X: cmd.X, Y: cmd.Y})
	case KindEvaluate:
		err = s.evaluate(cmd.X)
	case KindOverlay:
		err = s.selectOverlay(cmd.Overlay)
	case KindHelp:
		s.printHelp()
	case KindView:
		s.view()
	case KindCompute:
		err = s.compute(ctx)
	case KindDelete:
		s.points.Clear()
		fmt.Fprintln(s.out, "All points deleted.")
	case KindQuit:
		fmt.Fprintf(s.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	}
	if err != nil {
		s.report(err)
	}
	return true
}

func (s *Session) evaluate(x float64) error {
	y, err := poly.Evaluate(s.last, x)
	if errors.Is(err, apperrors.ErrNoPolynomial) {
		return &apperrors.PreconditionError{Command: "x", Reason: "no polynomial computed", Cause: err}
	}
	if err != nil {
		return apperrors.WrapError(err, "evaluating at %s", format.Decimal(x))
	}
	fmt.Fprintf(s.out, "y(%s) = %s%s%s\n", format.Decimal(x), ui.ColorMagenta(), format.Decimal(y), ui.ColorReset())
	return nil
}

func (s *Session) selectOverlay(id overlay.ID) error {
	if id == overlay.None {
		s.overlay = overlay.None
		fmt.Fprintln(s.out, "Overlay cleared.")
		return nil
	}
	o, err := overlay.Lookup(id)
	if err != nil {
		return err
	}
	s.overlay = id
	fmt.Fprintf(s.out, "Overlay set to %s%s%s.\n", ui.ColorYellow(), o, ui.ColorReset())
	return nil
}

func (s *Session) view() {
	printDivider(s.out)
	fmt.Fprintln(s.out, "The points are:")
	for _, p := range s.points.All() {
		fmt.Fprintln(s.out, format.Point(p.X, p.Y))
	}
	printDivider(s.out)
}

// compute builds the interpolant, prints it, hands it to the render sink
// and stores it. Nothing is printed or stored when the build fails.
func (s *Session) compute(ctx context.Context) error {
	pts := s.points.All()
	if len(pts) < lagrange.MinPoints {
		s.metrics.InterpolationFinished(metrics.OutcomeInsufficient, 0)
		return &apperrors.PreconditionError{
			Command: "c",
			Reason:  fmt.Sprintf("need at least %d points, have %d", lagrange.MinPoints, len(pts)),
		}
	}

	start := time.Now()
	p, cached, err := s.builder.Build(pts)
	elapsed := time.Since(start)
	if err != nil {
		s.metrics.InterpolationFinished(metrics.OutcomeDegenerate, 0)
		return err
	}
	s.metrics.InterpolationFinished(metrics.OutcomeOK, p.Degree())
	s.logger.Info("interpolant built",
		logging.Int("points", len(pts)),
		logging.Int("degree", p.Degree()),
		logging.Field{Key: "cached", Value: cached},
	)

	label := poly.Format(p)
	printDivider(s.out)
	fmt.Fprintln(s.out, "The polynomial formula is:")
	fmt.Fprintf(s.out, "%s%s%s\n", ui.ColorGreen(), label, ui.ColorReset())
	printDivider(s.out)
	if s.verbose {
		fmt.Fprintf(s.out, "%sComputed in %s%s\n", ui.ColorGrey(), format.FormatExecutionDuration(elapsed), ui.ColorReset())
	}
	s.last = p

	xmin, xmax, err := s.points.Bounds()
	if err != nil {
		return err
	}
	req := plot.Request{
		Coefficients: p.Clone(),
		Label:        label,
		XMin:         xmin,
		XMax:         xmax,
		Overlay:      s.overlay,
		Points:       pts,
	}
	renderErr := s.renderer.Render(ctx, req)
	s.metrics.RenderFinished(renderErr)
	if renderErr != nil && !apperrors.IsContextError(renderErr) {
		s.logger.Error("render failed", renderErr)
		fmt.Fprintf(s.out, "%sThe plot could not be displayed: %v%s\n", ui.ColorYellow(), renderErr, ui.ColorReset())
	}
	return nil
}

// report prints the user-facing message for a command error.
func (s *Session) report(err error) {
	var (
		malformed    *apperrors.MalformedInputError
		precondition *apperrors.PreconditionError
		msg          string
	)
	switch {
	case errors.As(err, &malformed):
		msg = `Incorrect command. To see the list of commands, type "h".`
	case errors.As(err, &precondition) && precondition.Command == "c":
		msg = "You need to input at least two points to compute."
	case errors.As(err, &precondition) && precondition.Command == "x":
		msg = `No polynomial has been computed yet. Type "c" to compute one.`
	case errors.Is(err, apperrors.ErrDegenerateInput), errors.Is(err, apperrors.ErrNonFiniteResult):
		msg = "The Lagrange polynomial is impossible to compute for this set of points."
	case errors.Is(err, apperrors.ErrValueOutOfRange):
		msg = "The value of the polynomial at this point is too large to display."
	case errors.Is(err, apperrors.ErrUnknownOverlay):
		msg = fmt.Sprintf(`Unknown overlay. Type "o" followed by a number from 0 to %d, or "h" for the list.`, overlay.Count)
	default:
		msg = "Error: " + err.Error()
	}
	s.logger.Debug("command rejected", logging.Err(err))
	fmt.Fprintf(s.out, "%s%s%s\n", ui.ColorRed(), msg, ui.ColorReset())
}
