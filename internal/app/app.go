// Package app implements the application layer for the veld string tools.
package app

import (
	"context"
	"runtime"

	"go.veld.sh/veld/internal/core/domain"
	"go.veld.sh/veld/internal/core/ports"
	"go.veld.sh/veld/internal/engine/names"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	logger ports.Logger
	names  *names.Table
}

// New creates a new App instance.
func New(log ports.Logger, table *names.Table) *App {
	return &App{
		logger: log,
		names:  table,
	}
}

// ReportOptions configuration for the Report method.
type ReportOptions struct {
	// Intern routes every input through the name table so repeated inputs
	// share storage.
	Intern bool
	// Jobs bounds the number of inputs processed concurrently.
	// Zero means one worker per CPU.
	Jobs int
}

// StringReport describes one runtime string value built from an input.
type StringReport struct {
	// Text is the input round-tripped through the value's code units.
	Text string
	// Length is the value's length in 16-bit code units.
	Length int
	// Small reports whether the value is stored inline.
	Small bool
	// Hash is the value's 32-bit hash.
	Hash uint32
	// NumberPath reports whether the hash came from the decimal fast path.
	NumberPath bool
	// Index holds the array index the value reads as, when NumberPath is
	// set and the value is non-empty.
	Index uint32
}

// Report builds string values for the inputs and describes each one.
// Inputs are processed concurrently; the result order matches the input
// order.
func (a *App) Report(ctx context.Context, inputs []string, opts ReportOptions) ([]StringReport, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	reports := make([]StringReport, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var v domain.StringValue
			if opts.Intern {
				v = a.names.InternString(input)
			} else {
				v = domain.FromString(input)
			}

			index, ok := v.ArrayIndex()
			reports[i] = StringReport{
				Text:       v.String(),
				Length:     v.Len(),
				Small:      v.IsSmall(),
				Hash:       v.Hash(),
				NumberPath: ok || v.Len() == 0,
				Index:      index,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Intern {
		a.logger.Debug("name table populated")
	}
	return reports, nil
}
