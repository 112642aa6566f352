package seed

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"portfolio-backend/internal/records"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/storage/db"
)

// OpenFunc returns the gateway to seed into and a func releasing it.
type OpenFunc func(ctx context.Context) (records.Gateway, func() error, error)

// Options configures the seed command.
type Options struct {
	File   string
	DryRun bool
	Open   OpenFunc
}

// NewCommand creates the seed command. A nil open connects to the configured database.
func NewCommand(open OpenFunc) *cobra.Command {
	opts := &Options{Open: open}
	if opts.Open == nil {
		opts.Open = OpenDatabase
	}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load portfolio records from a YAML file",
		Long: `Load portfolio records from a YAML document keyed by table name.

Every table and column is checked before anything is written.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "portfolio.yaml", "seed document")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "validate and report without writing")

	return cmd
}

// OpenDatabase connects to the database named by the environment.
func OpenDatabase(ctx context.Context) (records.Gateway, func() error, error) {
	cfg := config.Load()
	sqlDB, err := db.Connect(ctx, cfg.DSN(), db.OptionsFromEnv(db.DefaultCLIOptions()))
	if err != nil {
		return nil, nil, err
	}
	return records.NewPGGateway(sqlDB), sqlDB.Close, nil
}

func run(ctx context.Context, opts *Options, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	plan, err := LoadFile(opts.File)
	if err != nil {
		return err
	}

	if opts.DryRun {
		printCounts(out, "would create", plan)
		return nil
	}

	gw, release, err := opts.Open(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	if release != nil {
		defer release()
	}

	written, err := Apply(ctx, records.NewService(gw), plan)
	if err != nil {
		fmt.Fprintf(out, "created %d record(s) before failure\n", written)
		return err
	}
	printCounts(out, "created", plan)
	return nil
}

func printCounts(out io.Writer, verb string, plan Plan) {
	counts := plan.Counts()
	tables := make([]string, 0, len(counts))
	for t := range counts {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	for _, t := range tables {
		fmt.Fprintf(out, "%s %d %s record(s)\n", verb, counts[t], t)
	}
	fmt.Fprintf(out, "total %d\n", len(plan.Entries))
}
