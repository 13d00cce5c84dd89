package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"

	"github.com/okian/draftsensei/internal/domain/model"
	"github.com/okian/draftsensei/internal/domain/registry"
	"github.com/okian/draftsensei/internal/domain/types"
)

const defaultPairs = 5

func newHeroesCommand(opts *options) *cobra.Command {
	var role, lane, search string
	cmd := &cobra.Command{
		Use:   "heroes",
		Short: "List heroes in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				r   model.Role
				l   model.Lane
				err error
			)
			if role != "" {
				if r, err = model.ParseRole(role); err != nil {
					return fmt.Errorf("%w: %w", ErrUsage, err)
				}
			}
			if lane != "" {
				if l, err = model.ParseLane(lane); err != nil {
					return fmt.Errorf("%w: %w", ErrUsage, err)
				}
			}
			e, err := opts.engine(cmd.Context())
			if err != nil {
				return err
			}

			folder := cases.Fold()
			needle := folder.String(strings.TrimSpace(search))
			list := make([]types.HeroSummary, 0)
			for _, h := range e.Heroes(r, l) {
				if needle != "" && !strings.Contains(folder.String(h.Name), needle) {
					continue
				}
				list = append(list, types.Summarize(h))
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, types.HeroList{Heroes: list, Total: len(list)})
			}
			t := newTable(
				column{header: "HERO", paint: opts.pal.hero},
				column{header: "ROLE"},
				column{header: "SECONDARY"},
				column{header: "LANES"},
			)
			for _, h := range list {
				t.add(h.Name, string(h.PrimaryRole), string(h.SecondaryRole), strings.Join(h.Lanes, ", "))
			}
			t.render(out, opts.pal)
			fmt.Fprintln(out, opts.pal.muted.Sprintf("%d heroes", len(list)))
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "only heroes with this role")
	cmd.Flags().StringVar(&lane, "lane", "", "only heroes that play this lane")
	cmd.Flags().StringVar(&search, "search", "", "only heroes whose name contains this text")
	cmd.AddCommand(newHeroShowCommand(opts))
	return cmd
}

func newHeroShowCommand(opts *options) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show one hero with its best counters and partners",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.engine(cmd.Context())
			if err != nil {
				return err
			}
			h, err := e.Hero(args[0])
			if err != nil {
				return err
			}
			counters, err := e.CountersTo(h.Name, n)
			if err != nil {
				return err
			}
			partners, err := e.PartnersFor(h.Name, n)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, struct {
					types.HeroDetail
					Counters []registry.Pair `json:"counters"`
					Synergy  []registry.Pair `json:"synergy"`
				}{types.Detail(h), counters, partners})
			}

			s := types.Summarize(h)
			fmt.Fprintf(out, "%s  %s\n", opts.pal.hero.Sprint(s.Name), s.PrimaryRole)
			if s.SecondaryRole != "" {
				fmt.Fprintf(out, "%s %s\n", opts.pal.title.Sprint("Secondary:"), s.SecondaryRole)
			}
			fmt.Fprintf(out, "%s %s\n\n", opts.pal.title.Sprint("Lanes:"), strings.Join(s.Lanes, ", "))
			renderPairs(cmd, opts, "COUNTERS", counters)
			fmt.Fprintln(out)
			renderPairs(cmd, opts, "SYNERGY", partners)
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "limit", "n", defaultPairs, "how many counters and partners to show")
	return cmd
}

func renderPairs(cmd *cobra.Command, opts *options, header string, pairs []registry.Pair) {
	t := newTable(column{header: header, paint: opts.pal.hero}, column{header: "SCORE", paint: opts.pal.score})
	for _, p := range pairs {
		t.add(p.Hero, formatScore(p.Score))
	}
	t.render(cmd.OutOrStdout(), opts.pal)
}
