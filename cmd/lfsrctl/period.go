package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/lfsrkit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newPeriodCmd())
}

func newPeriodCmd() *cobra.Command {
	rf := &registerFlags{}

	cmd := &cobra.Command{
		Use:   "period",
		Short: "Measure the cycle length of a register configuration",
		Long: `The period command counts the steps a register takes to return to its
starting state. A maximal-length configuration of size n reports 2^n - 1.
Configurations whose taps drive the state to zero, or strand it on a tail
outside its eventual cycle, are reported as degenerate.

Example:
  lfsrctl period
  lfsrctl period --size 7 --state 1 --taps 0,6
  lfsrctl period --config register.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPeriod(rf)
		},
	}
	rf.add(cmd)
	return cmd
}

// maximalPeriod returns 2^size - 1 without overflowing for size 64.
func maximalPeriod(size int) uint64 {
	return ^uint64(0) >> (64 - uint(size))
}

func runPeriod(rf *registerFlags) error {
	r, err := rf.register()
	if err != nil {
		return err
	}

	printVerbose("register: size=%d taps=%v state=%s\n", r.Size(), r.Taps(), r.StateString())

	period, err := r.Period()
	if errors.Is(err, types.ErrDegenerateCycle) {
		return fmt.Errorf("taps %v on %d bits are degenerate: %w", r.Taps(), r.Size(), err)
	}
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"size":    r.Size(),
			"taps":    r.Taps(),
			"period":  period,
			"maximal": uint64(period) == maximalPeriod(r.Size()),
		})
	}

	printInfo("Period: %d\n", period)
	if uint64(period) == maximalPeriod(r.Size()) {
		printInfo("Maximal length for %d bits\n", r.Size())
	}
	return nil
}
