package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/memkit/internal/script"
	"github.com/joshuapare/memkit/mem/alloc"
	"github.com/joshuapare/memkit/mem/printer"
)

var statsCapacity int

func init() {
	cmd := newStatsCmd()
	cmd.Flags().IntVarP(&statsCapacity, "capacity", "c", 100, "Capacity of the space in words")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <script>",
		Short: "Run an op script and show fragmentation statistics",
		Long: `The stats command executes a script silently and prints operation
counters and fragmentation metrics for the final state of the space.

Example:
  memctl stats workload.mem
  memctl stats workload.mem --capacity 1024 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args[0])
		},
	}
	return cmd
}

func runStats(path string) error {
	printVerbose("Running script: %s (capacity %d)\n", path, statsCapacity)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	ops, err := script.Parse(f)
	if err != nil {
		return err
	}

	sp, err := alloc.New(statsCapacity)
	if err != nil {
		return fmt.Errorf("failed to create space: %w", err)
	}

	// Execute silently; only the final stats matter here.
	for _, op := range ops {
		switch op.Kind {
		case script.OpAlloc:
			_, _ = sp.Alloc(op.Arg)
		case script.OpFree:
			_ = sp.Free(op.Arg)
		case script.OpCompact:
			sp.Compact()
		case script.OpDump, script.OpStats:
			// Rendering ops are ignored in stats mode.
		}
	}

	pr := printer.New(os.Stdout, printer.Options{JSON: jsonOut, ShowStats: true})
	return pr.PrintSpace(sp)
}
