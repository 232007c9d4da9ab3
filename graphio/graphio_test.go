package graphio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DireMonarch/graph-canonical-relabel/builder"
	"github.com/DireMonarch/graph-canonical-relabel/graphio"
)

func TestWriteReadRoundTrip(t *testing.T) {
	g, err := builder.Cycle(5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteAdjacencyMatrix(&buf, g))

	g2, err := graphio.ReadAdjacencyMatrix(&buf)
	require.NoError(t, err)

	require.Equal(t, g.N(), g2.N())
	for i := 0; i < g.N(); i++ {
		for j := 0; j < g.N(); j++ {
			assert.Equal(t, g.Adjacent(i, j), g2.Adjacent(i, j))
		}
	}
}

func TestWriteAdjacencyMatrix_Format(t *testing.T) {
	g, err := builder.Path(3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteAdjacencyMatrix(&buf, g))

	want := "0 1 0\n1 0 1\n0 1 0\n"
	assert.Equal(t, want, buf.String())
}

func TestReadAdjacencyMatrix_EmptyInput(t *testing.T) {
	_, err := graphio.ReadAdjacencyMatrix(strings.NewReader(""))
	assert.ErrorIs(t, err, graphio.ErrEmptyInput)
}

func TestReadAdjacencyMatrix_RaggedRow(t *testing.T) {
	_, err := graphio.ReadAdjacencyMatrix(strings.NewReader("0 1 0\n1 0\n"))
	assert.ErrorIs(t, err, graphio.ErrRaggedRow)
}

func TestReadAdjacencyMatrix_InvalidToken(t *testing.T) {
	_, err := graphio.ReadAdjacencyMatrix(strings.NewReader("0 2\n2 0\n"))
	assert.ErrorIs(t, err, graphio.ErrInvalidToken)
}

func TestReadAdjacencyMatrix_NonzeroDiagonal(t *testing.T) {
	_, err := graphio.ReadAdjacencyMatrix(strings.NewReader("1 0\n0 0\n"))
	assert.ErrorIs(t, err, graphio.ErrAsymmetric)
}

func TestReadAdjacencyMatrix_NotSymmetric(t *testing.T) {
	_, err := graphio.ReadAdjacencyMatrix(strings.NewReader("0 1\n0 0\n"))
	assert.ErrorIs(t, err, graphio.ErrAsymmetric)
}

func TestReadAdjacencyMatrix_NonSquare(t *testing.T) {
	_, err := graphio.ReadAdjacencyMatrix(strings.NewReader("0 1 0\n1 0 1\n"))
	assert.ErrorIs(t, err, graphio.ErrAsymmetric)
}
