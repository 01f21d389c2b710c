package main

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) mineCommand() *cobra.Command {
	var (
		count uint64
		all   bool
	)
	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Search a range of nonces for cycles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The range is [nonce, nonce+count); its last nonce must not wrap.
			if count == 0 || count-1 > math.MaxUint64-a.nonce {
				return errors.Wrapf(ErrNonceRange, "--nonce %d --nonces %d", a.nonce, count)
			}
			e, err := a.newEngine()
			if err != nil {
				return err
			}
			header, err := a.headerBytes()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i := uint64(0); i < count; i++ {
				n := a.nonce + i
				res, err := e.SolveHeader(cmd.Context(), header, n)
				if err != nil {
					return errors.Wrapf(err, "nonce %d", n)
				}
				for _, p := range res.Proofs() {
					fmt.Fprintf(out, "Solution nonce=%d: %s\n", n, formatProof(p))
				}
				if res.Solved() && !all {
					break
				}
			}

			st := e.Stats()
			fmt.Fprintf(out, "Graphs: %d  Solutions: %d  Graphs/s: %.2f\n", st.Graphs, st.Solutions, st.GraphsPerSecond())
			return nil
		},
	}
	cmd.Flags().Uint64Var(&count, "nonces", 1, "Number of consecutive nonces to try")
	cmd.Flags().BoolVar(&all, "all", false, "Keep going after the first solution")

	return cmd
}
