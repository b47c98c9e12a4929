// Package loader reads and writes the edge-list text format:
//
//	<vertex count>
//	<label> <label>
//	<label> <label>
//	...
//
// The first line is an integer vertex count. It must parse but is advisory:
// vertices are created from the labels that actually appear, indexed in order
// of first appearance. Every further line holds exactly two whitespace-separated
// labels. Labels are arbitrary strings, so there is no comment syntax; only
// blank lines at the end of the input are tolerated. Repeated edges are kept
// as parallel edges. A self-loop "a a" creates the vertex but no edge, which
// is how Write records isolated vertices.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/domset/core"
)

var (
	// ErrBadHeader is returned when the first line is missing or not a
	// non-negative integer.
	ErrBadHeader = errors.New("loader: bad header")

	// ErrBadEdge is returned when an edge line does not hold exactly two labels.
	ErrBadEdge = errors.New("loader: bad edge line")
)

// maxLine bounds a single input line.
const maxLine = 1 << 20

// Stats summarizes a parsed input.
type Stats struct {
	// Declared is the header count.
	Declared int
	// Lines is the number of edge lines read.
	Lines int
	// DroppedLoops counts edge lines naming the same label twice.
	DroppedLoops int
}

// Parse reads a graph from r.
//
// Errors wrap ErrBadHeader or ErrBadEdge with the 1-based line number, or
// carry the underlying read error.
func Parse(r io.Reader) (*core.Graph, Stats, error) {
	var (
		st      Stats
		b       = core.NewBuilder()
		sc      = bufio.NewScanner(r)
		lineNo  int
		blankAt int // first blank line not yet followed by content
		sawHead bool
	)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			if blankAt == 0 {
				blankAt = lineNo
			}
			continue
		}
		if blankAt != 0 {
			if !sawHead {
				return nil, st, errors.Wrapf(ErrBadHeader, "line %d: blank", blankAt)
			}
			return nil, st, errors.Wrapf(ErrBadEdge, "line %d: want 2 labels, got 0", blankAt)
		}
		if !sawHead {
			n, err := strconv.Atoi(line)
			if err != nil || n < 0 {
				return nil, st, errors.Wrapf(ErrBadHeader, "line %d: %q", lineNo, line)
			}
			st.Declared = n
			sawHead = true
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, st, errors.Wrapf(ErrBadEdge, "line %d: want 2 labels, got %d", lineNo, len(fields))
		}
		if err := b.AddEdge(fields[0], fields[1]); err != nil {
			return nil, st, errors.Wrapf(ErrBadEdge, "line %d: %v", lineNo, err)
		}
		st.Lines++
	}
	if err := sc.Err(); err != nil {
		return nil, st, errors.Wrap(err, "loader: read")
	}
	if !sawHead {
		return nil, st, errors.Wrap(ErrBadHeader, "empty input")
	}
	st.DroppedLoops = b.DroppedLoops()

	return b.Build(), st, nil
}

// LoadFile parses the file at path; "-" reads standard input.
func LoadFile(path string) (*core.Graph, Stats, error) {
	if path == "-" {
		return Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, errors.Wrapf(err, "loader: open %s", path)
	}
	defer f.Close()

	g, st, err := Parse(f)
	if err != nil {
		return nil, st, errors.WithMessage(err, path)
	}

	return g, st, nil
}

// Write emits g in the format Parse reads: the vertex count, then in vertex
// order one line per edge (u < v by index, parallel edges repeated). An
// isolated vertex is written as the self-loop "v v" so that it survives a
// re-parse; Parse counts those lines in Stats.DroppedLoops.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", g.Order())
	for v := core.Vertex(0); int(v) < g.Order(); v++ {
		if g.Degree(v) == 0 {
			fmt.Fprintf(bw, "%s %s\n", g.Label(v), g.Label(v))
			continue
		}
		for _, u := range g.Neighbors(v) {
			if v < u {
				fmt.Fprintf(bw, "%s %s\n", g.Label(v), g.Label(u))
			}
		}
	}

	return errors.Wrap(bw.Flush(), "loader: write")
}
