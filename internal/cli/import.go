package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/draftsensei/internal/adapters/repository"
	"github.com/okian/draftsensei/internal/domain/catalog"
)

func newImportCommand(opts *options) *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Load a YAML or JSON hero file into a SQLite database",
		Long: `Load hero records from FILE into the SQLite database at --db,
creating and migrating it when needed. Records are upserted by name, so
importing the same file twice is harmless. Records the catalog would reject
are reported and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if dbPath == "" {
				if opts.cfg.HeroSource != repository.SourceSQLite {
					return fmt.Errorf("%w: --db is required unless the configured source is sqlite", ErrUsage)
				}
				dbPath = opts.cfg.HeroSourcePath
			}

			records, err := repository.NewFileSource(args[0]).Heroes(ctx)
			if err != nil {
				return err
			}
			c := catalog.New(records)
			out := cmd.OutOrStdout()
			for _, r := range c.Rejected() {
				fmt.Fprintln(out, opts.pal.warn.Sprintf("skipped %s: %v", r.Name, r.Err))
			}
			valid := records[:0:0]
			for _, r := range records {
				if _, ok := c.Lookup(r.Name); ok {
					valid = append(valid, r)
				}
			}

			db, err := repository.OpenSQLite(ctx, repository.DefaultSQLiteConfig(dbPath))
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			n, err := db.Import(ctx, valid)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "imported %d heroes into %s\n", n, dbPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (defaults to the configured sqlite source)")
	return cmd
}
