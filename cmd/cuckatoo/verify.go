package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cuckatoo/cycles"
	"github.com/katalvlaran/cuckatoo/edges"
	"github.com/katalvlaran/cuckatoo/keys"
)

func (a *app) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify EDGE...",
		Short: "Check a proof (edge indices, ascending) for --header and --nonce",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.engineConfig()
			if err != nil {
				return errors.Wrap(err, "configuration")
			}
			header, err := a.headerBytes()
			if err != nil {
				return err
			}
			proof, err := parseProof(args)
			if err != nil {
				return err
			}

			params, err := edges.NewParams(cfg.EdgeBits)
			if err != nil {
				return err
			}
			g := edges.NewGenerator(params, keys.Derive(header, a.nonce))
			if err = cycles.VerifyProof(g, proof, cfg.CycleLength); err != nil {
				return errors.Wrap(err, "invalid proof")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Proof is valid")
			return nil
		},
	}
}

// parseProof accepts edge indices as separate arguments, comma separated,
// or both.
func parseProof(args []string) ([]uint64, error) {
	var proof []uint64
	for _, arg := range args {
		for _, f := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' }) {
			e, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "edge %q", f)
			}
			proof = append(proof, e)
		}
	}

	return proof, nil
}

func formatProof(p []uint64) string {
	parts := make([]string, len(p))
	for i, e := range p {
		parts[i] = strconv.FormatUint(e, 10)
	}

	return strings.Join(parts, " ")
}
