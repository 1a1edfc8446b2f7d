package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rcube"
	"github.com/SeamusWaldron/rcube/internal/notation"
)

const movesHelp = `Moves may be passed as separate arguments or as one quoted sequence.
Flags go before the first move; everything after it is read as a move.
Put "--" before the moves when the first one is a reverse move, so it is
not read as a flag.`

// stopFlagsAtFirstMove makes reverse moves such as -R after the first
// move parse as arguments instead of shorthand flags.
func stopFlagsAtFirstMove(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newApplyCmd(a *app) *cobra.Command {
	var describe bool

	cmd := &cobra.Command{
		Use:   "apply MOVES...",
		Short: "Apply moves to a solved cube",
		Long: `Apply a move sequence to a solved cube, then print the cube and its fitness.

` + movesHelp + `

Examples:
  rcube apply R U -R -U
  rcube apply "F R U"
  rcube apply --describe F -R
  rcube apply -- -M -M E`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := notation.ParseFields(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cube := rcube.New()
			for i, m := range moves {
				cube.Apply(m)
				if describe {
					fmt.Fprintf(out, "%3d. %-3s %-32s fitness %d\n", i+1, m, notation.Describe(m), cube.Fitness())
				}
			}
			a.verbosef(cmd, "Applied %d moves\n", len(moves))

			fmt.Fprint(out, cube.String())
			fmt.Fprintf(out, "Fitness: %d/%d\n", cube.Fitness(), rcube.NumFacelets)
			if cube.IsSolved() {
				fmt.Fprintln(out, "Solved")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&describe, "describe", "d", false, "Describe each move and the fitness after it")
	return stopFlagsAtFirstMove(cmd)
}

func newInvertCmd(a *app) *cobra.Command {
	return stopFlagsAtFirstMove(&cobra.Command{
		Use:   "invert MOVES...",
		Short: "Print the sequence that undoes MOVES",
		Long: `Print the inverse of a move sequence: the moves in reverse order, each one
reversed.

` + movesHelp,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := notation.ParseFields(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), notation.FormatSequence(notation.Inverse(moves)))
			return nil
		},
	})
}

func newSimplifyCmd(a *app) *cobra.Command {
	return stopFlagsAtFirstMove(&cobra.Command{
		Use:   "simplify MOVES...",
		Short: "Remove moves that cancel out",
		Long: `Remove moves that cancel each other: a move directly followed by its
reverse, and four identical moves in a row.

` + movesHelp,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := notation.ParseFields(args)
			if err != nil {
				return err
			}
			simplified := notation.Simplify(moves)
			a.verbosef(cmd, "Removed %d of %d moves\n", len(moves)-len(simplified), len(moves))
			fmt.Fprintln(cmd.OutOrStdout(), notation.FormatSequence(simplified))
			return nil
		},
	})
}
