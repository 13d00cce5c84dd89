package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/okian/draftsensei/internal/domain/diversity"
)

const sessionDirPermission = 0o750

// loadSession reads the diversity state kept in path. A missing file is an
// empty session.
func loadSession(path string) (diversity.State, error) {
	if path == "" {
		return diversity.State{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return diversity.State{}, nil
		}
		return diversity.State{}, fmt.Errorf("open session: %w", err)
	}
	defer func() { _ = f.Close() }()

	var st diversity.State
	if err := msgpack.NewDecoder(f).Decode(&st); err != nil {
		return diversity.State{}, fmt.Errorf("decode session %s: %w", path, err)
	}
	return st, nil
}

// saveSession writes st to path through a temp file and rename.
func saveSession(path string, st diversity.State) (err error) {
	if path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, sessionDirPermission); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	f, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(st); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode session: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	return os.Rename(f.Name(), path)
}

func newSessionCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or reset the session file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show how often each hero has been suggested",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.sessionFile == "" {
				return fmt.Errorf("%w: --session-file is required", ErrUsage)
			}
			st, err := loadSession(opts.sessionFile)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, st.Counts())
			}
			counts := st.Counts()
			heroes := st.Heroes()
			sort.SliceStable(heroes, func(i, j int) bool { return counts[heroes[i]] > counts[heroes[j]] })
			t := newTable(column{header: "HERO", paint: opts.pal.hero}, column{header: "SUGGESTED"})
			for _, h := range heroes {
				t.add(h, strconv.Itoa(counts[h]))
			}
			t.render(out, opts.pal)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget the session history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.sessionFile == "" {
				return fmt.Errorf("%w: --session-file is required", ErrUsage)
			}
			if err := os.Remove(opts.sessionFile); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("reset session: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "session reset")
			return nil
		},
	})
	return cmd
}
