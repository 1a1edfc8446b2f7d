package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rcube"
	"github.com/SeamusWaldron/rcube/internal/notation"
	"github.com/SeamusWaldron/rcube/internal/session"
)

// exportedMove is the JSON form of one logged move.
type exportedMove struct {
	MoveIndex   int    `json:"move_index"`
	Notation    string `json:"notation"`
	Description string `json:"description"`
	Fitness     int    `json:"fitness"`
}

// exportedSession is the JSON form of a session's move log.
type exportedSession struct {
	SessionID string         `json:"session_id"`
	Fitness   int            `json:"fitness"`
	Solved    bool           `json:"solved"`
	Moves     []exportedMove `json:"moves"`
}

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export session data",
		Long:  `Export session data in various formats.`,
	}
	cmd.AddCommand(newExportMovesCmd(a))
	return cmd
}

func newExportMovesCmd(a *app) *cobra.Command {
	var (
		sessionID string
		format    string
		output    string
		last      bool
	)

	cmd := &cobra.Command{
		Use:   "moves",
		Short: "Export the moves of a session",
		Long: `Export the move log of a session in text or JSON format.

Examples:
  rcube export moves --last
  rcube export moves --id <session_id> --format json
  rcube export moves --id <session_id> --format txt -o moves.txt`,
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

				data, err := formatExport(summary, format)
				if err != nil {
					return err
				}

				if output == "" {
					fmt.Fprintln(cmd.OutOrStdout(), data)
					return nil
				}

				// Ensure directory exists
				dir := filepath.Dir(output)
				if dir != "" && dir != "." {
					if err := os.MkdirAll(dir, 0755); err != nil {
						return fmt.Errorf("failed to create output directory: %w", err)
					}
				}

				if err := os.WriteFile(output, []byte(data+"\n"), 0644); err != nil {
					return fmt.Errorf("failed to write output file: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d moves to %s\n", summary.MoveCount, output)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&sessionID, "id", "", "Session ID to export (default: active session)")
	cmd.Flags().BoolVar(&last, "last", false, "Export the most recent session")
	cmd.Flags().StringVar(&format, "format", "txt", "Export format (txt, json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}

// formatExport renders a session's moves as txt or json.
func formatExport(summary *session.Summary, format string) (string, error) {
	switch strings.ToLower(format) {
	case "txt":
		return notation.FormatSequence(summary.Moves), nil

	case "json":
		export := exportedSession{
			SessionID: summary.Session.SessionID,
			Fitness:   summary.Fitness,
			Solved:    summary.Solved,
			Moves:     make([]exportedMove, 0, len(summary.Moves)),
		}

		tracker := rcube.NewTracker(rcube.WithMoveHistory(false))
		for i, m := range summary.Moves {
			tracker.Apply(m)
			export.Moves = append(export.Moves, exportedMove{
				MoveIndex:   i,
				Notation:    m.String(),
				Description: notation.Describe(m),
				Fitness:     tracker.Fitness(),
			})
		}

		data, err := json.MarshalIndent(export, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("unknown format: %s (use txt or json)", format)
	}
}
