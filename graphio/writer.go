package graphio

import (
	"bufio"
	"io"

	"github.com/DireMonarch/graph-canonical-relabel/core"
)

// WriteAdjacencyMatrix writes g's full n x n adjacency matrix to w: one
// line per row, entries space-separated, "1" for an edge and "0" for
// none, with a zero diagonal.
// Complexity: O(n^2).
func WriteAdjacencyMatrix(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	n := g.N()

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			ch := byte('0')
			if i != j && g.Adjacent(i, j) {
				ch = '1'
			}
			if err := bw.WriteByte(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
