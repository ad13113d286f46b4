// Package script parses the line-oriented op-script format that drives a
// memory space from the command line.
//
// A script is a sequence of lines, one operation per line. Blank lines and
// lines starting with '#' are skipped. Operations:
//
//	alloc <length>   allocate <length> words
//	free <addr>      free the block based at <addr>
//	compact          compact the space
//	dump             print the free and allocated registries
//	stats            print counters and fragmentation metrics
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Kind identifies an operation.
type Kind int

const (
	OpAlloc Kind = iota + 1
	OpFree
	OpCompact
	OpDump
	OpStats
)

// String returns the keyword for the kind.
func (k Kind) String() string {
	switch k {
	case OpAlloc:
		return "alloc"
	case OpFree:
		return "free"
	case OpCompact:
		return "compact"
	case OpDump:
		return "dump"
	case OpStats:
		return "stats"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Op is one parsed operation. Arg carries the length for OpAlloc and the
// address for OpFree; it is unused otherwise. Line is the 1-based source
// line, kept for error reporting by executors.
type Op struct {
	Kind Kind
	Arg  int
	Line int
}

// Parse reads a script from r and returns its operations in order.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		op := Op{Line: lineNo}

		switch fields[0] {
		case "alloc", "free":
			if fields[0] == "alloc" {
				op.Kind = OpAlloc
			} else {
				op.Kind = OpFree
			}
			if len(fields) != 2 {
				return nil, fmt.Errorf("script: line %d: %s takes exactly one argument", lineNo, fields[0])
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("script: line %d: bad argument %q: %w", lineNo, fields[1], err)
			}
			op.Arg = n

		case "compact", "dump", "stats":
			if len(fields) != 1 {
				return nil, fmt.Errorf("script: line %d: %s takes no arguments", lineNo, fields[0])
			}
			switch fields[0] {
			case "compact":
				op.Kind = OpCompact
			case "dump":
				op.Kind = OpDump
			case "stats":
				op.Kind = OpStats
			}

		default:
			return nil, fmt.Errorf("script: line %d: unknown operation %q", lineNo, fields[0])
		}

		ops = append(ops, op)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("script: read: %w", err)
	}
	return ops, nil
}
