package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/lfsrkit/pkg/lfsr"
)

func init() {
	rootCmd.AddCommand(newTapsCmd())
}

func newTapsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taps [size]",
		Short: "Show known maximal-length tap sets",
		Long: `The taps command lists tap sets known to produce maximal-length cycles
(period 2^n - 1). With a size argument it prints the set for that size only.

Example:
  lfsrctl taps
  lfsrctl taps 16`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaps(args)
		},
	}
	return cmd
}

func runTaps(args []string) error {
	if len(args) == 1 {
		size, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("size must be an integer, got %q", args[0])
		}
		taps, ok := lfsr.MaximalTaps(size)
		if !ok {
			return fmt.Errorf("no maximal tap set recorded for size %d", size)
		}
		if jsonOut {
			return printJSON(map[string]interface{}{"size": size, "taps": taps})
		}
		printInfo("%v\n", taps)
		return nil
	}

	sizes := lfsr.PresetSizes()
	if jsonOut {
		all := make(map[string][]int, len(sizes))
		for _, n := range sizes {
			taps, _ := lfsr.MaximalTaps(n)
			all[strconv.Itoa(n)] = taps
		}
		return printJSON(all)
	}

	printInfo("Size  Taps\n")
	printInfo("----------\n")
	for _, n := range sizes {
		taps, _ := lfsr.MaximalTaps(n)
		printInfo("%4d  %v\n", n, taps)
	}
	return nil
}
