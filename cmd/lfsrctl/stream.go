package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/lfsrkit/internal/seq"
)

func init() {
	rootCmd.AddCommand(newStreamCmd())
}

func newStreamCmd() *cobra.Command {
	rf := &registerFlags{}
	var outPath string

	cmd := &cobra.Command{
		Use:   "stream <k>",
		Short: "Emit k output bits from a register",
		Long: `The stream command steps a register k times and prints the emitted bits
as a single line of 0s and 1s. With --out the stream is written to a file in
the reference-sequence format instead.

Example:
  lfsrctl stream 30
  lfsrctl stream 64 --size 7 --state 0x53 --taps 0,6
  lfsrctl stream 1000 --config register.yaml --out reference.bits`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.Atoi(args[0])
			if err != nil || k < 0 {
				return fmt.Errorf("bit count must be a non-negative integer, got %q", args[0])
			}
			return runStream(rf, k, outPath)
		},
	}
	rf.add(cmd)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write bits to this file instead of stdout")
	return cmd
}

func runStream(rf *registerFlags, k int, outPath string) error {
	r, err := rf.register()
	if err != nil {
		return err
	}

	printVerbose("register: size=%d taps=%v state=%s\n", r.Size(), r.Taps(), r.StateString())

	bits, err := r.Bits(k)
	if err != nil {
		return fmt.Errorf("streaming %d bits: %w", k, err)
	}

	if outPath != "" {
		if err := seq.WriteFile(outPath, bits); err != nil {
			return fmt.Errorf("writing stream: %w", err)
		}
		printVerbose("wrote %d bits to %s\n", len(bits), outPath)
		return nil
	}

	if jsonOut {
		return printJSON(bits)
	}

	os.Stdout.Write(seq.Emit(bits))
	return nil
}
