// Package session drives the interactive collect, report and repeat loop.
package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/rentcalc/internal/advice"
	"github.com/verte-zerg/rentcalc/internal/expense"
	"github.com/verte-zerg/rentcalc/internal/model"
	"github.com/verte-zerg/rentcalc/internal/prompt"
	"github.com/verte-zerg/rentcalc/internal/report"
	"github.com/verte-zerg/rentcalc/internal/store"
)

const (
	personsPrompt = "\nEnter number of persons sharing: "
	repeatPrompt  = "Do you want to calculate again? (yes/no): "
)

// Runner owns one process worth of calculations.
type Runner struct {
	prompter   *prompt.Prompter
	reporter   *report.Reporter
	out        io.Writer
	store      *store.Store
	thresholds model.Thresholds
	logger     *slog.Logger

	now   func() time.Time
	newID func() string
}

// New constructs a Runner reading answers from in and printing to out.
func New(in io.Reader, out io.Writer, st *store.Store, cfg model.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	theme := report.NewTheme(cfg.Color)
	return &Runner{
		prompter:   prompt.New(in, out, theme, logger),
		reporter:   report.New(theme, cfg.Currency),
		out:        out,
		store:      st,
		thresholds: cfg.Thresholds,
		logger:     logger,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Run greets the user and repeats calculations until they decline.
// Closed input ends the loop without error.
func (r *Runner) Run(ctx context.Context) error {
	err := r.run(ctx)
	if errors.Is(err, prompt.ErrInputClosed) {
		r.logger.Debug("input closed, stopping")
		return nil
	}
	return err
}

func (r *Runner) run(ctx context.Context) error {
	theme := r.reporter.Theme()
	if err := report.WriteLines(r.out, []string{
		"",
		theme.Heading("Welcome to Rent Calculator!"),
		"Calculate and split your living expenses easily.",
		"",
	}); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := r.Once(ctx); err != nil {
			return err
		}
		again, err := r.prompter.YesNo(repeatPrompt)
		if err != nil {
			return err
		}
		if !again {
			return report.WriteLines(r.out, []string{
				"",
				theme.Heading("Thank you for using Rent Calculator! Goodbye!"),
				"",
			})
		}
	}
}

// Once runs a single collect, report, advise and compare cycle on a fresh expense set.
func (r *Runner) Once(ctx context.Context) (model.HistoryRecord, error) {
	set, err := r.Collect()
	if err != nil {
		return model.HistoryRecord{}, err
	}
	sum := expense.Summarize(set)
	if err := report.WriteLines(r.out, r.reporter.Results(sum)); err != nil {
		return model.HistoryRecord{}, err
	}

	rec := model.HistoryRecord{
		SessionID: r.newID(),
		CreatedAt: r.now(),
		Total:     sum.Total,
		PerPerson: sum.PerPerson,
		Persons:   sum.Persons,
	}
	r.record(ctx, rec)

	if err := report.WriteLines(r.out, r.reporter.Tips(advice.Tips(set, sum, r.thresholds))); err != nil {
		return model.HistoryRecord{}, err
	}
	if err := report.WriteLines(r.out, r.reporter.Comparison(expense.Scenarios(sum.Total, sum.Persons))); err != nil {
		return model.HistoryRecord{}, err
	}
	return rec, nil
}

// Collect prompts for every category amount and the head-count.
func (r *Runner) Collect() (model.ExpenseSet, error) {
	lines := append([]string{""}, r.reporter.Banner("RENT CALCULATOR - Enter Your Expenses")...)
	if err := report.WriteLines(r.out, append(lines, "")); err != nil {
		return model.ExpenseSet{}, err
	}
	var set model.ExpenseSet
	for _, c := range model.Categories {
		amount, err := r.prompter.Float(c.Prompt()+r.reporter.Currency(), 0)
		if err != nil {
			return model.ExpenseSet{}, err
		}
		set.Amounts[c] = amount
	}
	persons, err := r.prompter.Int(personsPrompt, 1)
	if err != nil {
		return model.ExpenseSet{}, err
	}
	set.Persons = persons
	return set, nil
}

func (r *Runner) record(ctx context.Context, rec model.HistoryRecord) {
	if r.store == nil {
		return
	}
	if _, err := r.store.Append(ctx, rec); err != nil {
		r.logger.Warn("failed to record history", "session", rec.SessionID, "err", err)
		return
	}
	r.logger.Debug("calculation recorded",
		"session", rec.SessionID,
		"total", rec.Total,
		"per_person", rec.PerPerson,
		"persons", rec.Persons,
	)
}
