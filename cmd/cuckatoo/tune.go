package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cuckatoo/engine"
	"github.com/katalvlaran/cuckatoo/keys"
)

func (a *app) tuneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tune",
		Short: "Solve one graph from the fixed tuning header and report stage timings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.newEngine()
			if err != nil {
				return err
			}
			header, err := a.headerBytes()
			if err != nil {
				return err
			}

			start := time.Now()
			k := keys.Derive(header, a.nonce)
			keyTime := time.Since(start)

			res, err := e.Solve(cmd.Context(), k)
			if err != nil {
				return errors.Wrap(err, "solving")
			}

			return printTuning(cmd, e.Config(), res, keyTime)
		},
	}
}

func printTuning(cmd *cobra.Command, cfg engine.Config, res *engine.Result, keyTime time.Duration) error {
	out := cmd.OutOrStdout()
	table, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Stage", "Time", "Detail"},
		{"keys", ms(keyTime), res.Keys.String()},
		{"trim", ms(res.TrimDuration), fmt.Sprintf("%d rounds, %d -> %d edges", res.Rounds, res.EdgesBefore, res.EdgesAfter)},
		{"search", ms(res.SearchDuration), fmt.Sprintf("%d cycle(s) of length %d", len(res.Cycles), cfg.CycleLength)},
		{"total", ms(keyTime + res.TrimDuration + res.SearchDuration), fmt.Sprintf("edge-bits %d", cfg.EdgeBits)},
	}).Srender()
	if err != nil {
		return errors.Wrap(err, "rendering table")
	}
	fmt.Fprintln(out, table)

	for _, p := range res.Proofs() {
		fmt.Fprintln(out, "Solution:", formatProof(p))
	}

	return nil
}
