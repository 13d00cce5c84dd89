package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okian/draftsensei/internal/domain/engine"
	"github.com/okian/draftsensei/internal/domain/model"
	"github.com/okian/draftsensei/internal/domain/types"
)

// draftFlags binds the draft state flags shared by suggest, bans and analyze.
type draftFlags struct {
	bans    []string
	enemies []string
	allies  []string
}

func (f *draftFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringSliceVarP(&f.bans, "ban", "b", nil, "banned hero (repeat or comma separate)")
	fl.StringSliceVarP(&f.enemies, "enemy", "e", nil, "enemy pick (repeat or comma separate)")
	fl.StringSliceVarP(&f.allies, "ally", "a", nil, "ally pick (repeat or comma separate)")
}

// request validates the flags as a draft request.
func (f *draftFlags) request(lane string) (types.DraftRequest, error) {
	req := types.DraftRequest{
		BannedHeroes: f.bans,
		EnemyPicks:   f.enemies,
		AllyPicks:    f.allies,
		Lane:         lane,
	}
	if err := req.Validate(); err != nil {
		return types.DraftRequest{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return req, nil
}

func newSuggestCommand(opts *options) *cobra.Command {
	var (
		df   draftFlags
		lane string
	)
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Recommend the next pick",
		Long: `Recommend the next pick for the ally team. Without --lane the lane
the team needs most is chosen. With --session-file, heroes suggested in
earlier runs are damped so the list rotates.`,
		Example: `  draftctl suggest --enemy Fanny,Ling --ally Tigreal
  draftctl suggest --lane roam --session-file ~/.draftsensei/session`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			req, err := df.request(lane)
			if err != nil {
				return err
			}
			e, err := opts.engine(ctx)
			if err != nil {
				return err
			}
			div, err := loadSession(opts.sessionFile)
			if err != nil {
				return err
			}

			var rec engine.Recommendation
			if req.Lane == "" {
				rec, div, err = e.RecommendAuto(ctx, req.State(), div)
			} else {
				l, perr := model.ParseLane(req.Lane)
				if perr != nil {
					return fmt.Errorf("%w: %w", ErrUsage, perr)
				}
				rec, div, err = e.Recommend(ctx, req.State(), l, div)
			}
			if err != nil {
				return err
			}
			if err := saveSession(opts.sessionFile, div); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, rec)
			}
			renderRecommendation(out, opts.pal, rec)
			return nil
		},
	}
	df.bind(cmd)
	cmd.Flags().StringVarP(&lane, "lane", "l", "", "lane to pick for: exp, jungle, mid, gold or roam")
	return cmd
}

func renderRecommendation(w io.Writer, pal palette, rec engine.Recommendation) {
	fmt.Fprintf(w, "%s %s\n", pal.title.Sprint("Lane:"), rec.LaneLabel)
	if rec.Reasoning != "" {
		fmt.Fprintln(w, pal.muted.Sprint(rec.Reasoning))
	}
	for _, adj := range rec.Adjustments {
		fmt.Fprintln(w, pal.muted.Sprint("weights: "+adj))
	}
	fmt.Fprintln(w)

	if len(rec.Suggestions) == 0 {
		fmt.Fprintln(w, pal.warn.Sprint("No heroes available for this lane."))
		return
	}
	t := newTable(
		column{header: "#"},
		column{header: "HERO", paint: pal.hero},
		column{header: "ROLE"},
		column{header: "SCORE", paint: pal.score},
		column{header: "CONF"},
		column{header: "REASONS"},
	)
	for i, s := range rec.Suggestions {
		t.add(strconv.Itoa(i+1), s.Hero, string(s.Role), formatScore(s.Score), formatScore(s.Confidence), strings.Join(s.Reasons, "; "))
	}
	t.render(w, pal)
}

func newBansCommand(opts *options) *cobra.Command {
	var df draftFlags
	cmd := &cobra.Command{
		Use:   "bans",
		Short: "Suggest heroes to ban against the ally picks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			req, err := df.request("")
			if err != nil {
				return err
			}
			e, err := opts.engine(ctx)
			if err != nil {
				return err
			}
			bans, err := e.SuggestBans(ctx, req.State())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, types.BansResponse{BestBans: bans})
			}
			if len(bans) == 0 {
				fmt.Fprintln(out, opts.pal.warn.Sprint("No hero threatens the ally picks."))
				return nil
			}
			t := newTable(
				column{header: "HERO", paint: opts.pal.hero},
				column{header: "ROLE"},
				column{header: "THREAT", paint: opts.pal.score},
				column{header: "REASONS"},
			)
			for _, b := range bans {
				t.add(b.Hero, string(b.Role), formatScore(b.Score), strings.Join(b.Reasons, "; "))
			}
			t.render(out, opts.pal)
			return nil
		},
	}
	df.bind(cmd)
	return cmd
}

func newAnalyzeCommand(opts *options) *cobra.Command {
	var df draftFlags
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze the ally team and the draft so far",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			req, err := df.request("")
			if err != nil {
				return err
			}
			e, err := opts.engine(ctx)
			if err != nil {
				return err
			}
			a, err := e.Analyze(ctx, req.State())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, a)
			}
			renderAnalysis(out, opts.pal, a)
			return nil
		},
	}
	df.bind(cmd)
	return cmd
}

func renderAnalysis(w io.Writer, p palette, a engine.Analysis) {
	row := func(label, value string) {
		fmt.Fprintf(w, "%s %s\n", p.title.Sprint(label), value)
	}
	row("Phase:", a.Phase)
	row("Composition:", a.AllyTeam.CompositionType)
	row("Team synergy:", formatScore(a.AllyTeam.SynergyScore))
	row("Counter advantage:", formatScore(a.CounterAdvantage))
	if len(a.AllyTeam.Strengths) > 0 {
		row("Strengths:", strings.Join(a.AllyTeam.Strengths, ", "))
	}
	if len(a.AllyTeam.Weaknesses) > 0 {
		row("Weaknesses:", p.warn.Sprint(strings.Join(a.AllyTeam.Weaknesses, ", ")))
	}
	if len(a.PriorityRoles) > 0 {
		parts := make([]string, 0, len(a.PriorityRoles))
		for _, r := range model.Roles() {
			if n, ok := a.PriorityRoles[r]; ok {
				parts = append(parts, fmt.Sprintf("%s x%d", r, n))
			}
		}
		row("Needed roles:", strings.Join(parts, ", "))
	}
	if len(a.AvoidRoles) > 0 {
		parts := make([]string, len(a.AvoidRoles))
		for i, r := range a.AvoidRoles {
			parts[i] = string(r)
		}
		row("Avoid roles:", strings.Join(parts, ", "))
	}
	if len(a.OpenLanes) > 0 {
		parts := make([]string, len(a.OpenLanes))
		for i, l := range a.OpenLanes {
			parts[i] = l.Label()
		}
		row("Open lanes:", strings.Join(parts, ", "))
	}
	if a.NextLane != "" {
		row("Next lane:", a.NextLane.Label()+" "+p.muted.Sprint("("+a.NextLaneReason+")"))
	}
}
