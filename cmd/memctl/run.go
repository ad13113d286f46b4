package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/memkit/internal/script"
	"github.com/joshuapare/memkit/mem/alloc"
	"github.com/joshuapare/memkit/mem/printer"
)

var capacityWords int

func init() {
	cmd := newRunCmd()
	cmd.Flags().IntVarP(&capacityWords, "capacity", "c", 100, "Capacity of the space in words")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run an op script against a fresh memory space",
		Long: `The run command executes a script of alloc/free/compact operations
against a fresh memory space and prints the outcome of each operation.
Allocation failures (out of space, unknown address) are reported and the
script keeps running; they are results, not errors.

Script format: one operation per line - "alloc <length>", "free <addr>",
"compact", "dump", "stats". Blank lines and '#' comments are skipped.

Example:
  memctl run workload.mem
  memctl run workload.mem --capacity 1024 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScriptFile(args[0])
		},
	}
	return cmd
}

func runScriptFile(path string) error {
	printVerbose("Running script: %s (capacity %d)\n", path, capacityWords)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	ops, err := script.Parse(f)
	if err != nil {
		return err
	}

	sp, err := alloc.New(capacityWords)
	if err != nil {
		return fmt.Errorf("failed to create space: %w", err)
	}

	if err := runOps(sp, ops); err != nil {
		return err
	}

	if jsonOut {
		return printer.New(os.Stdout, printer.Options{JSON: true, ShowStats: true}).PrintSpace(sp)
	}
	return nil
}

// runOps executes parsed operations against sp. Allocator errors are
// reported per line and execution continues.
func runOps(sp *alloc.Space, ops []script.Op) error {
	pr := printer.New(os.Stdout, printer.Options{JSON: jsonOut})
	statsPr := printer.New(os.Stdout, printer.Options{JSON: jsonOut, ShowStats: true})

	for _, op := range ops {
		switch op.Kind {
		case script.OpAlloc:
			addr, err := sp.Alloc(op.Arg)
			if err != nil {
				printInfo("line %d: alloc %d: %v\n", op.Line, op.Arg, err)
				continue
			}
			printInfo("line %d: alloc %d -> %d\n", op.Line, op.Arg, addr)

		case script.OpFree:
			if err := sp.Free(op.Arg); err != nil {
				printInfo("line %d: free %d: %v\n", op.Line, op.Arg, err)
				continue
			}
			printInfo("line %d: free %d: ok\n", op.Line, op.Arg)

		case script.OpCompact:
			sp.Compact()
			printInfo("line %d: compact: ok\n", op.Line)

		case script.OpDump:
			if !quiet {
				if err := pr.PrintSpace(sp); err != nil {
					return err
				}
			}

		case script.OpStats:
			if !quiet {
				if err := statsPr.PrintSpace(sp); err != nil {
					return err
				}
			}

		default:
			return fmt.Errorf("line %d: unhandled operation %s", op.Line, op.Kind)
		}
	}
	return nil
}
