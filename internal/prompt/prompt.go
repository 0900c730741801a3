// Package prompt reads validated answers from a line-oriented console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/verte-zerg/rentcalc/internal/expense"
	"github.com/verte-zerg/rentcalc/internal/report"
)

// ErrInputClosed is returned once the input stream has no more lines.
var ErrInputClosed = errors.New("input closed")

const (
	invalidNumberMsg = "Invalid input! Please enter a valid number."
	yesNoMsg         = "Please enter 'yes' or 'no'"
)

// Prompter asks questions on w and reads answers from r.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	theme  report.Theme
	logger *slog.Logger
}

// New constructs a Prompter. A nil logger discards diagnostics.
func New(r io.Reader, w io.Writer, theme report.Theme, logger *slog.Logger) *Prompter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Prompter{
		in:     bufio.NewReader(r),
		out:    w,
		theme:  theme,
		logger: logger,
	}
}

// Float asks until the answer is a number no smaller than minimum.
func (p *Prompter) Float(question string, minimum float64) (float64, error) {
	for {
		line, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		value, err := expense.ParseAmount(line)
		if err != nil {
			p.logger.Debug("rejected amount", "input", line, "err", err)
			if err := p.complain(invalidNumberMsg); err != nil {
				return 0, err
			}
			continue
		}
		if value < minimum {
			p.logger.Debug("amount below minimum", "value", value, "min", minimum)
			if err := p.complain(belowMinimum(strconv.FormatFloat(minimum, 'f', -1, 64))); err != nil {
				return 0, err
			}
			continue
		}
		return value, nil
	}
}

// Int asks until the answer is an integer no smaller than minimum.
func (p *Prompter) Int(question string, minimum int) (int, error) {
	for {
		line, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			p.logger.Debug("rejected integer", "input", line, "err", err)
			if err := p.complain(invalidNumberMsg); err != nil {
				return 0, err
			}
			continue
		}
		if value < minimum {
			p.logger.Debug("integer below minimum", "value", value, "min", minimum)
			if err := p.complain(belowMinimum(strconv.Itoa(minimum))); err != nil {
				return 0, err
			}
			continue
		}
		return value, nil
	}
}

// YesNo asks until the answer is yes, y, no or n, ignoring case.
func (p *Prompter) YesNo(question string) (bool, error) {
	for {
		line, err := p.ask(question)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		if _, err := fmt.Fprintln(p.out, yesNoMsg); err != nil {
			return false, err
		}
	}
}

func (p *Prompter) ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) complain(msg string) error {
	_, err := fmt.Fprintln(p.out, p.theme.Problem(msg))
	return err
}

func belowMinimum(minimum string) string {
	return fmt.Sprintf("Value must be at least %s. Try again.", minimum)
}
