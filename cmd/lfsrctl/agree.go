package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/lfsrkit/internal/seq"
	"github.com/joshuapare/lfsrkit/pkg/lfsr"
)

func init() {
	rootCmd.AddCommand(newAgreeCmd())
}

func newAgreeCmd() *cobra.Command {
	rf := &registerFlags{}

	cmd := &cobra.Command{
		Use:   "agree <reference-file>",
		Short: "Score a register's stream against a reference sequence",
		Long: `The agree command loads a reference bit sequence (one bit per line or
per character, # comments ignored), generates the same number of bits from
the configured register, and prints the percentage of matching positions.

Example:
  lfsrctl agree reference.bits
  lfsrctl agree reference.bits --size 7 --state 0b1010011 --taps 0,6
  lfsrctl agree reference.bits --config register.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAgree(rf, args[0])
		},
	}
	rf.add(cmd)
	return cmd
}

func runAgree(rf *registerFlags, refPath string) error {
	reference, err := seq.ReadFile(refPath)
	if err != nil {
		return err
	}
	if len(reference) == 0 {
		return fmt.Errorf("reference sequence %s contains no bits", refPath)
	}
	printVerbose("loaded %d reference bits from %s\n", len(reference), refPath)

	r, err := rf.register()
	if err != nil {
		return err
	}

	stream, err := r.Bits(len(reference))
	if err != nil {
		return fmt.Errorf("streaming %d bits: %w", len(reference), err)
	}

	pct, err := lfsr.Agreement(stream, reference)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"bits":      len(reference),
			"agreement": pct,
		})
	}

	printInfo("Agreement: %.2f%% over %d bits\n", pct, len(reference))
	return nil
}
