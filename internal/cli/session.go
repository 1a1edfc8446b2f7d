package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rcube"
	"github.com/SeamusWaldron/rcube/internal/analysis"
	"github.com/SeamusWaldron/rcube/internal/notation"
	"github.com/SeamusWaldron/rcube/internal/session"
)

func newSessionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage practice sessions",
		Long: `Commands for starting, extending and reviewing practice sessions.

A session is a cube whose move log is stored in the database. The most
recently started (or used) session is active, so --id can usually be left out.`,
	}

	cmd.AddCommand(newSessionStartCmd(a))
	cmd.AddCommand(newSessionUseCmd(a))
	cmd.AddCommand(newSessionApplyCmd(a))
	cmd.AddCommand(newSessionUndoCmd(a))
	cmd.AddCommand(newSessionResetCmd(a))
	cmd.AddCommand(newSessionShowCmd(a))
	cmd.AddCommand(newSessionListCmd(a))
	cmd.AddCommand(newSessionDeleteCmd(a))

	return cmd
}

// withManager opens the database for the duration of fn.
func (a *app) withManager(cmd *cobra.Command, fn func(*session.Manager) error) error {
	db, err := a.openDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(session.NewManager(db))
}

func newSessionStartCmd(a *app) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new session on a solved cube",
		Long:  `Start a new session on a solved cube and make it the active session.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withManager(cmd, func(mgr *session.Manager) error {
				id, err := mgr.Start(notes)
				if err != nil {
					return err
				}

				sf, err := a.stateFile()
				if err != nil {
					return fmt.Errorf("failed to load state: %w", err)
				}
				if err := sf.SetActiveSession(id); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Session started: %s\n", id)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Notes for this session")
	return cmd
}

func newSessionUseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use SESSION_ID",
		Short: "Make a session the active session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withManager(cmd, func(mgr *session.Manager) error {
				if _, err := mgr.Load(args[0]); err != nil {
					return err
				}

				sf, err := a.stateFile()
				if err != nil {
					return fmt.Errorf("failed to load state: %w", err)
				}
				if err := sf.SetActiveSession(args[0]); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Active session: %s\n", args[0])
				return nil
			})
		},
	}
}

func newSessionApplyCmd(a *app) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "apply MOVES...",
		Short: "Apply moves to a session",
		Long: `Apply moves to the session's cube and store them in its move log.
Nothing is stored if any move is unknown.

` + movesHelp,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := notation.ParseFields(args)
			if err != nil {
				return err
			}

			return a.withManager(cmd, func(mgr *session.Manager) error {
				id, err := a.resolveSessionID(mgr, sessionID, false)
				if err != nil {
					return err
				}

				fitness, err := mgr.Apply(id, moves)
				if err != nil {
					return err
				}

				a.verbosef(cmd, "Session %s: applied %s\n", id, notation.FormatSequence(moves))
				fmt.Fprintf(cmd.OutOrStdout(), "Fitness: %d/%d\n", fitness, rcube.NumFacelets)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&sessionID, "id", "", "Session ID (default: active session)")
	return stopFlagsAtFirstMove(cmd)
}

func newSessionUndoCmd(a *app) *cobra.Command {
	var (
		sessionID string
		count     int
	)

	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Undo the last moves of a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withManager(cmd, func(mgr *session.Manager) error {
				id, err := a.resolveSessionID(mgr, sessionID, false)
				if err != nil {
					return err
				}

				undone, fitness, err := mgr.Undo(id, count)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(undone) == 0 {
					fmt.Fprintln(out, "Nothing to undo")
				} else {
					fmt.Fprintf(out, "Undone: %s\n", notation.FormatSequence(undone))
				}
				fmt.Fprintf(out, "Fitness: %d/%d\n", fitness, rcube.NumFacelets)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&sessionID, "id", "", "Session ID (default: active session)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of moves to undo")
	return cmd
}

func newSessionResetCmd(a *app) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear a session's moves, returning it to a solved cube",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withManager(cmd, func(mgr *session.Manager) error {
				id, err := a.resolveSessionID(mgr, sessionID, false)
				if err != nil {
					return err
				}
				if err := mgr.Reset(id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Session %s reset\n", id)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&sessionID, "id", "", "Session ID (default: active session)")
	return cmd
}

func newSessionShowCmd(a *app) *cobra.Command {
	var (
		sessionID string
		last      bool
		patterns  bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a session's cube, fitness and moves",
		Long: `Display a session's current cube, fitness, move log and the move log with
cancelling moves removed.

Use --last to show the most recent session. Use --patterns to also list
move sequences that repeat within the log.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withManager(cmd, func(mgr *session.Manager) error {
				id, err := a.resolveSessionID(mgr, sessionID, last)
				if err != nil {
					return err
				}

				summary, err := mgr.Summary(id)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Session: %s\n", summary.Session.SessionID)
				fmt.Fprintf(out, "Created: %s\n", summary.Session.CreatedAt.Format(time.RFC3339))
				if summary.Session.Notes != nil {
					fmt.Fprintf(out, "Notes: %s\n", *summary.Session.Notes)
				}
				fmt.Fprintln(out)
				fmt.Fprint(out, summary.Cube.String())
				fmt.Fprintln(out)
				if summary.MoveCount > 0 {
					fmt.Fprintf(out, "Fitness: %d/%d (best %d)\n", summary.Fitness, rcube.NumFacelets, summary.BestFitness)
				} else {
					fmt.Fprintf(out, "Fitness: %d/%d\n", summary.Fitness, rcube.NumFacelets)
				}
				fmt.Fprintf(out, "Solved: %v\n", summary.Solved)
				fmt.Fprintf(out, "Moves (%d): %s\n", summary.MoveCount, notation.FormatSequence(summary.Moves))
				fmt.Fprintf(out, "Simplified (%d): %s\n", len(summary.Simplified), notation.FormatSequence(summary.Simplified))

				if patterns {
					writePatterns(out, analysis.MineNGrams(summary.Moves, 2, 8, 3))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&sessionID, "id", "", "Session ID (default: active session)")
	cmd.Flags().BoolVar(&last, "last", false, "Show the most recent session")
	cmd.Flags().BoolVar(&patterns, "patterns", false, "List repeated move sequences")
	return cmd
}

func writePatterns(out io.Writer, report *analysis.NGramReport) {
	fmt.Fprintln(out)
	if report.Empty() {
		fmt.Fprintln(out, "No repeated sequences")
		return
	}

	fmt.Fprintln(out, "Repeated sequences:")
	for _, n := range report.Lengths() {
		for _, ng := range report.TopNGrams[n] {
			fmt.Fprintf(out, "  %dx  %s\n", ng.Count, notation.FormatSequence(ng.Moves))
		}
	}
}

func newSessionListCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withManager(cmd, func(mgr *session.Manager) error {
				sessions, err := mgr.List(limit)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(sessions) == 0 {
					fmt.Fprintln(out, "No sessions recorded yet")
					return nil
				}

				fmt.Fprintf(out, "%-36s  %-20s  %7s  %s\n", "ID", "CREATED", "FITNESS", "NOTES")
				for _, s := range sessions {
					notes := ""
					if s.Notes != nil {
						notes = *s.Notes
					}
					fmt.Fprintf(out, "%-36s  %-20s  %7d  %s\n",
						s.SessionID, s.CreatedAt.Format("2006-01-02 15:04:05"), s.Fitness, notes)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of sessions to list")
	return cmd
}

func newSessionDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete SESSION_ID",
		Short: "Delete a session and its moves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withManager(cmd, func(mgr *session.Manager) error {
				if err := mgr.Delete(args[0]); err != nil {
					return err
				}

				sf, err := a.stateFile()
				if err != nil {
					return fmt.Errorf("failed to load state: %w", err)
				}
				if sf.ActiveSessionID() == args[0] {
					if err := sf.ClearActiveSession(); err != nil {
						return err
					}
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s\n", args[0])
				return nil
			})
		},
	}
}
