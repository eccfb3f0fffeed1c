package app_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.veld.sh/veld/internal/app"
	"go.veld.sh/veld/internal/engine/names"
)

type nopLogger struct{}

func (nopLogger) Debug(string)        {}
func (nopLogger) Info(string)         {}
func (nopLogger) Warn(string)         {}
func (nopLogger) Error(error)         {}
func (nopLogger) SetOutput(io.Writer) {}
func (nopLogger) SetJSON(bool)        {}

func newTestApp() *app.App {
	return app.New(nopLogger{}, names.NewTable())
}

func TestApp_Report(t *testing.T) {
	a := newTestApp()

	reports, err := a.Report(context.Background(), []string{"abc", "12345", "", "abcdef"}, app.ReportOptions{})
	require.NoError(t, err)
	require.Len(t, reports, 4)

	assert.Equal(t, app.StringReport{
		Text:   "abc",
		Length: 3,
		Small:  true,
		Hash:   57803724,
	}, reports[0])

	assert.Equal(t, app.StringReport{
		Text:       "12345",
		Length:     5,
		Small:      false,
		Hash:       12345 ^ 0x55555555,
		NumberPath: true,
		Index:      12345,
	}, reports[1])

	assert.Equal(t, app.StringReport{
		Text:       "",
		Length:     0,
		Small:      true,
		Hash:       0x55555555,
		NumberPath: true,
	}, reports[2])

	assert.False(t, reports[3].Small)
	assert.False(t, reports[3].NumberPath)
}

func TestApp_ReportOrderPreserved(t *testing.T) {
	a := newTestApp()

	inputs := make([]string, 100)
	for i := range inputs {
		inputs[i] = string(rune('a'+i%26)) + "suffix"
	}

	reports, err := a.Report(context.Background(), inputs, app.ReportOptions{Jobs: 8})
	require.NoError(t, err)
	require.Len(t, reports, len(inputs))
	for i, r := range reports {
		assert.Equal(t, inputs[i], r.Text)
	}
}

func TestApp_ReportIntern(t *testing.T) {
	table := names.NewTable()
	a := app.New(nopLogger{}, table)

	_, err := a.Report(context.Background(), []string{"name", "name", "other"}, app.ReportOptions{Intern: true})
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}

func TestApp_ReportCanceledContext(t *testing.T) {
	a := newTestApp()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Report(ctx, []string{"abc"}, app.ReportOptions{})
	require.ErrorIs(t, err, context.Canceled)
}
