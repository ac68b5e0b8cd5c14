// Package commands implements the CLI commands for the digest browser.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/digest/internal/app"
	"go.trai.ch/digest/internal/build"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/engine/query"
)

// CLI represents the command line interface for digest.
type CLI struct {
	app     Application
	logs    LogSettings
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Home(ctx context.Context) app.HomeView
	Month(ctx context.Context, month string, q query.Query) (app.MonthView, error)
	Explore(ctx context.Context, q query.Query) (app.ExploreView, error)
	LoadPayload(ctx context.Context, req domain.LoadRequest) (domain.MonthPayload, error)
	Stats() domain.CacheStats
	ClearCache(ctx context.Context, opts app.CleanOptions) app.CleanResult
}

// LogSettings adjusts the logger from command line flags.
type LogSettings interface {
	SetJSON(enable bool)
	SetLevel(name string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "digest",
		Short:         "Browse the monthly research paper digest",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.Bool("json", false, "Print results as JSON")
	flags.Bool("stats", false, "Print cache statistics after the command")
	flags.Bool("log-json", false, "Write logs as JSON lines")
	flags.Bool("verbose", false, "Enable debug logging")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = c.applyLogFlags
	rootCmd.PersistentPostRun = c.printStats

	rootCmd.AddCommand(c.newMonthsCmd())
	rootCmd.AddCommand(c.newMonthCmd())
	rootCmd.AddCommand(c.newExploreCmd())
	rootCmd.AddCommand(c.newLoadCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// WithLogSettings lets the global logging flags reconfigure l.
func (c *CLI) WithLogSettings(l LogSettings) *CLI {
	c.logs = l
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) applyLogFlags(cmd *cobra.Command, _ []string) error {
	if c.logs == nil {
		return nil
	}
	if logJSON, _ := cmd.Flags().GetBool("log-json"); logJSON {
		c.logs.SetJSON(true)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return c.logs.SetLevel("debug")
	}
	return nil
}

func (c *CLI) printStats(cmd *cobra.Command, _ []string) {
	if show, _ := cmd.Flags().GetBool("stats"); !show {
		return
	}
	if jsonOutput(cmd) {
		_ = writeJSON(cmd.ErrOrStderr(), c.app.Stats())
		return
	}
	writeStats(cmd.ErrOrStderr(), c.app.Stats())
}

func jsonOutput(cmd *cobra.Command) bool {
	enabled, _ := cmd.Flags().GetBool("json")
	return enabled
}

// queryFlags registers the search flags shared by month and explore.
func queryFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("query", "q", "", "Search text matched against title, authors and summary")
	cmd.Flags().StringArrayP("tag", "t", nil, "Tag filter as category=value (repeatable)")
	cmd.Flags().StringP("sort", "s", string(query.SortPublishedDesc),
		"Sort order: published_desc, published_asc, title_asc or confidence_desc")
}

func parseQuery(cmd *cobra.Command) (query.Query, error) {
	text, _ := cmd.Flags().GetString("query")
	tags, _ := cmd.Flags().GetStringArray("tag")
	sortName, _ := cmd.Flags().GetString("sort")

	order, err := query.ParseSortOrder(sortName)
	if err != nil {
		return query.Query{}, err
	}
	q := query.Query{Text: text, Sort: order}
	for _, expr := range tags {
		category, value, err := query.ParseTagFilter(expr)
		if err != nil {
			return query.Query{}, err
		}
		q.AddTag(category, value)
	}
	return q, nil
}
