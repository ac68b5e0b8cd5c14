package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/digest/cmd/digest/commands"
	"go.trai.ch/digest/internal/app"
	"go.trai.ch/digest/internal/build"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/engine/query"
)

type mockApp struct {
	monthFunc   func(ctx context.Context, month string, q query.Query) (app.MonthView, error)
	exploreFunc func(ctx context.Context, q query.Query) (app.ExploreView, error)
	loadFunc    func(ctx context.Context, req domain.LoadRequest) (domain.MonthPayload, error)
	home        app.HomeView
	stats       domain.CacheStats
	cleaned     *app.CleanOptions
}

func (m *mockApp) Home(context.Context) app.HomeView { return m.home }

func (m *mockApp) Month(ctx context.Context, month string, q query.Query) (app.MonthView, error) {
	if m.monthFunc != nil {
		return m.monthFunc(ctx, month, q)
	}
	return app.MonthView{}, nil
}

func (m *mockApp) Explore(ctx context.Context, q query.Query) (app.ExploreView, error) {
	if m.exploreFunc != nil {
		return m.exploreFunc(ctx, q)
	}
	return app.ExploreView{}, nil
}

func (m *mockApp) LoadPayload(ctx context.Context, req domain.LoadRequest) (domain.MonthPayload, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, req)
	}
	return domain.EmptyPayload(req.Month), nil
}

func (m *mockApp) Stats() domain.CacheStats { return m.stats }

func (m *mockApp) ClearCache(_ context.Context, opts app.CleanOptions) app.CleanResult {
	m.cleaned = &opts
	return app.CleanResult{Memory: opts.Memory, Persistent: opts.Persistent, Stats: opts.Stats}
}

type fakeLogSettings struct {
	json  bool
	level string
}

func (f *fakeLogSettings) SetJSON(enable bool) { f.json = enable }

func (f *fakeLogSettings) SetLevel(name string) error {
	f.level = name
	return nil
}

func execute(t *testing.T, cli *commands.CLI, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cli.SetOutput(stdout, stderr)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestCommands_Months(t *testing.T) {
	mock := &mockApp{home: app.HomeView{Years: []app.YearGroup{{
		Year:   "2024",
		Papers: 1,
		Months: []app.MonthCard{{
			Month:    "2024-05",
			Label:    "May 2024",
			Href:     "digest/2024-05/index.html",
			Papers:   1,
			Featured: &domain.FeaturedPaper{Title: "Sleep staging"},
		}},
	}}}}

	out, _, err := execute(t, commands.New(mock), "months")
	require.NoError(t, err)
	assert.Contains(t, out, "2024 (total: 1 paper)")
	assert.Contains(t, out, "May 2024")
	assert.Contains(t, out, "★ Sleep staging")

	t.Run("json", func(t *testing.T) {
		out, _, err := execute(t, commands.New(mock), "months", "--json")
		require.NoError(t, err)
		var decoded app.HomeView
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, mock.home, decoded)
	})

	t.Run("empty", func(t *testing.T) {
		out, _, err := execute(t, commands.New(&mockApp{home: app.HomeView{Message: query.NoMonthsMessage}}), "months")
		require.NoError(t, err)
		assert.Equal(t, query.NoMonthsMessage+"\n", out)
	})
}

func TestCommands_Month(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured query.Query
		var capturedMonth string
		mock := &mockApp{monthFunc: func(_ context.Context, month string, q query.Query) (app.MonthView, error) {
			capturedMonth, captured = month, q
			return app.MonthView{
				Month: month, Label: "May 2024", FeaturedID: "2405.2", Total: 2,
				Papers: []domain.Paper{{ArxivIDBase: "2405.2", Title: "Seizure detection", PublishedDate: "2024-05-10"}},
			}, nil
		}}

		out, _, err := execute(t, commands.New(mock), "month", "2024-05",
			"-q", "seizure", "--tag", "backbone=cnn", "--tag", "objective=masked-reconstruction", "--sort", "title_asc")
		require.NoError(t, err)

		assert.Equal(t, "2024-05", capturedMonth)
		assert.Equal(t, "seizure", captured.Text)
		assert.Equal(t, query.SortTitleAsc, captured.Sort)
		assert.Equal(t, []string{"cnn"}, captured.Tags["backbone"])
		assert.Equal(t, []string{"masked-reconstruction"}, captured.Tags["objective"])
		assert.Contains(t, out, "Showing 1 of 2 accepted papers for May 2024.")
		assert.Contains(t, out, "★ 2405.2")
	})

	t.Run("rejects bad filters", func(t *testing.T) {
		mock := &mockApp{monthFunc: func(context.Context, string, query.Query) (app.MonthView, error) {
			panic("should not be called")
		}}

		_, _, err := execute(t, commands.New(mock), "month", "2024-05", "--tag", "colour=red")
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrUnknownTagCategory.Error())

		_, _, err = execute(t, commands.New(mock), "month", "2024-05", "--sort", "random")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid sort order")
	})

	t.Run("requires a month", func(t *testing.T) {
		_, _, err := execute(t, commands.New(&mockApp{}), "month")
		require.Error(t, err)
	})

	t.Run("returns app errors", func(t *testing.T) {
		mock := &mockApp{monthFunc: func(context.Context, string, query.Query) (app.MonthView, error) {
			return app.MonthView{}, errors.New("simulated error")
		}}
		_, _, err := execute(t, commands.New(mock), "month", "2024-05")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Explore(t *testing.T) {
	var captured query.Query
	mock := &mockApp{exploreFunc: func(_ context.Context, q query.Query) (app.ExploreView, error) {
		captured = q
		return app.ExploreView{
			MonthsTotal: 3, MonthsLoaded: 3, MonthsFailed: 1, Total: 1,
			Papers: []domain.Paper{{Month: "2024-05", ArxivIDBase: "2405.1", Title: "Sleep staging"}},
		}, nil
	}}

	out, _, err := execute(t, commands.New(mock), "explore", "--month", "2024-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-05", captured.Month)
	assert.Equal(t, query.SortPublishedDesc, captured.Sort)
	assert.Contains(t, out, "1 result (loaded 3 of 3 months, 1 failed)")
	assert.Contains(t, out, "2405.1")

	_, _, err = execute(t, commands.New(mock), "explore")
	require.NoError(t, err)
	assert.Equal(t, query.AllMonths, captured.Month)
}

func TestCommands_Load(t *testing.T) {
	var captured domain.LoadRequest
	mock := &mockApp{loadFunc: func(_ context.Context, req domain.LoadRequest) (domain.MonthPayload, error) {
		captured = req
		return domain.EmptyPayload(req.Month), nil
	}}

	_, _, err := execute(t, commands.New(mock), "load", "--month", "2024-05", "--view", "explore", "--revision", "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.LoadRequest{
		Month:      "2024-05",
		SourcePath: "digest/2024-05/papers.json",
		View:       domain.ViewExplore,
		Revision:   "r1",
	}, captured)

	_, _, err = execute(t, commands.New(mock), "load")
	require.ErrorIs(t, err, domain.ErrMissingMonth)

	_, _, err = execute(t, commands.New(mock), "load", "--month", "2024-05", "--view", "sidebar")
	require.ErrorIs(t, err, domain.ErrInvalidView)
}

func TestCommands_Clean(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want app.CleanOptions
	}{
		{"default clears payloads", nil, app.CleanOptions{Memory: true, Persistent: true}},
		{"memory only", []string{"--memory"}, app.CleanOptions{Memory: true}},
		{"stats only", []string{"--reset-stats"}, app.CleanOptions{Stats: true}},
		{"all", []string{"--all"}, app.CleanOptions{Memory: true, Persistent: true, Stats: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockApp{}
			_, _, err := execute(t, commands.New(mock), append([]string{"clean"}, tt.args...)...)
			require.NoError(t, err)
			require.NotNil(t, mock.cleaned)
			assert.Equal(t, tt.want, *mock.cleaned)
		})
	}
}

func TestCommands_GlobalFlags(t *testing.T) {
	mock := &mockApp{stats: domain.CacheStats{
		Cumulative: domain.CumulativeStats{MapHits: 2, NetworkHits: 1},
		LastRun:    &domain.RunStats{MonthsTotal: 3, MonthsLoaded: 3, MapHits: 2},
	}}
	logs := &fakeLogSettings{}

	_, errOut, err := execute(t, commands.New(mock).WithLogSettings(logs), "months", "--stats", "--verbose", "--log-json")
	require.NoError(t, err)
	assert.True(t, logs.json)
	assert.Equal(t, "debug", logs.level)
	assert.Contains(t, errOut, "cache: map_hits=2 local_hits=0 network_hits=1 cache_writes=0")
	assert.Contains(t, errOut, "last run: months=3/3")
}

func TestCommands_StatsAsJSON(t *testing.T) {
	mock := &mockApp{stats: domain.CacheStats{
		Cumulative: domain.CumulativeStats{MapHits: 2, LocalHits: 1, NetworkHits: 1},
	}}

	_, errOut, err := execute(t, commands.New(mock), "months", "--stats", "--json")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"cumulative": {`)
	assert.Contains(t, errOut, `"last_run": null`)
	assert.Contains(t, errOut, `"session_hits": 1`)
	assert.Contains(t, errOut, `"map_hits": 2`)
}

func TestCommands_Version(t *testing.T) {
	out, _, err := execute(t, commands.New(&mockApp{}), "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}
