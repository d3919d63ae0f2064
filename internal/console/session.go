// Package console implements the interactive command session of dynbuf: it
// seeds a buffer from the input stream, then applies append and remove
// commands, re-running the numeric tasks after each one.
//
// Input is a stream of whitespace-separated tokens:
//
//	N v1 ... vN          seed values
//	1 x                  append x
//	2                    remove the last element
//	0                    stop
//
// Unknown command codes are ignored. End of input stops the session.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/cwbudde/algo-dynbuf/buffer"
	"github.com/cwbudde/algo-dynbuf/tasks"
)

// Command codes.
const (
	CodeStop   = 0
	CodeAppend = 1
	CodeRemove = 2
)

// ErrMalformedInput is returned when a token cannot be parsed as the
// number the protocol expects at that point.
var ErrMalformedInput = errors.New("console: malformed input")

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for diagnostics. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithLimits sets the capacity policy of the session buffer.
func WithLimits(l buffer.Limits) Option {
	return func(s *Session) {
		s.limits = l
	}
}

// WithStopOnError makes the first failing command end the session with its
// error instead of being reported and skipped.
func WithStopOnError(stop bool) Option {
	return func(s *Session) {
		s.stopOnError = stop
	}
}

// Session runs the command protocol against one buffer.
type Session struct {
	out         *errWriter
	log         *slog.Logger
	limits      buffer.Limits
	stopOnError bool
	runner      *tasks.Runner
	buf         *buffer.Buffer
}

// New returns a Session writing its transcript to out.
func New(out io.Writer, opts ...Option) (*Session, error) {
	s := &Session{
		out:    &errWriter{w: out},
		log:    slog.Default(),
		limits: buffer.DefaultLimits(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	pool, err := buffer.NewPool(buffer.WithLimits(s.limits))
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}
	s.runner = tasks.NewRunner(
		tasks.WithPool(pool),
		tasks.WithObserver(func(_ tasks.Stage, b *buffer.Buffer) {
			s.printf("%s\n", b)
		}),
	)
	return s, nil
}

// Buffer returns the session buffer, or nil before the seed was read.
func (s *Session) Buffer() *buffer.Buffer {
	return s.buf
}

// Run reads the seed and then commands from in until a stop command, end
// of input, or ctx is done.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	r := &tokenReader{sc: sc}

	if err := s.seed(r); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		code, err := r.int()
		if errors.Is(err, io.EOF) {
			return s.out.err
		}
		if err != nil {
			return err
		}

		switch code {
		case CodeStop:
			s.log.Debug("stop command")
			return s.out.err
		case CodeAppend:
			v, err := r.float()
			if err != nil {
				return err
			}
			err = s.apply("append", func() error { return s.buf.PushBack(v) }, "+")
			if err != nil {
				return err
			}
		case CodeRemove:
			if err := s.apply("remove", s.buf.PopBack, "-"); err != nil {
				return err
			}
		default:
			s.log.Debug("ignoring unknown command", "code", code)
		}

		if s.out.err != nil {
			return s.out.err
		}
	}
}

func (s *Session) seed(r *tokenReader) error {
	n, err := r.int()
	if err != nil {
		return fmt.Errorf("console: read seed count: %w", err)
	}
	if n < 0 {
		return fmt.Errorf("%w: negative seed count %d", ErrMalformedInput, n)
	}

	if n > s.limits.Max {
		return fmt.Errorf("console: seed buffer: %w: %d values, max %d", buffer.ErrCapacityExceeded, n, s.limits.Max)
	}

	values := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v, err := r.float()
		if err != nil {
			return fmt.Errorf("console: read seed value %d: %w", i, err)
		}
		values = append(values, v)
	}

	b, err := buffer.FromSlice(values, buffer.WithLimits(s.limits))
	if err != nil {
		return fmt.Errorf("console: seed buffer: %w", err)
	}
	s.buf = b
	s.log.Debug("seeded buffer", "len", b.Len(), "cap", b.Cap())

	s.printf("%d\n", b.Len())
	return s.runTasks()
}

// apply runs a buffer command and, when it succeeds, prints the new length
// with the given marker and re-runs the tasks.
func (s *Session) apply(name string, op func() error, marker string) error {
	if err := op(); err != nil {
		return s.fail(name, err)
	}
	s.log.Debug("command applied", "command", name, "len", s.buf.Len(), "cap", s.buf.Cap())
	s.printf("%s: %d\n", marker, s.buf.Len())
	return s.runTasks()
}

func (s *Session) runTasks() error {
	if _, err := s.runner.Run(s.buf); err != nil {
		return s.fail("run tasks", err)
	}
	return nil
}

// fail reports err and returns it only when the session stops on errors.
func (s *Session) fail(name string, err error) error {
	s.log.Warn("command failed", "command", name, "error", err)
	s.printf("error: %v\n", err)
	if s.stopOnError {
		return fmt.Errorf("console: %s: %w", name, err)
	}
	return nil
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

type tokenReader struct {
	sc *bufio.Scanner
}

func (r *tokenReader) next() (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.sc.Text(), nil
}

func (r *tokenReader) int() (int, error) {
	tok, err := r.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, tok)
	}
	return n, nil
}

func (r *tokenReader) float() (float64, error) {
	tok, err := r.next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w: unexpected end of input", ErrMalformedInput)
		}
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrMalformedInput, tok)
	}
	return v, nil
}

// errWriter remembers the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
