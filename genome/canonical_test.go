package genome_test

import (
	"testing"

	"github.com/katalvlaran/genecycle/genome"
	"github.com/stretchr/testify/require"
)

func TestSignature_RotationInvariance(t *testing.T) {
	a := mkGenome(t, "A", "B", "C", "D")
	b := mkGenome(t, "C", "D", "A", "B")
	c := mkGenome(t, "D", "A", "B", "C")

	require.Equal(t, "A+ B+ C+ D+", a.Signature(false))
	require.Equal(t, a.Signature(false), b.Signature(false))
	require.Equal(t, a.Signature(false), c.Signature(false))
	require.True(t, genome.Equal(a, b, false))
}

func TestSignature_OrientationMatters(t *testing.T) {
	a := mkGenome(t, "A", "B", "C")
	b, err := genome.New([]genome.Gene{
		{ID: "A", Orient: genome.Normal},
		{ID: "B", Orient: genome.Inverted},
		{ID: "C", Orient: genome.Normal},
	})
	require.NoError(t, err)

	require.Equal(t, "A+ B- C+", b.Signature(false))
	require.False(t, genome.Equal(a, b, false))
}

func TestSignature_MirrorFolding(t *testing.T) {
	// fwd reads A+ B+ C+ D+; its mirror reads A- D- C- B-.
	a := mkGenome(t, "A", "B", "C", "D")

	// The mirror genome: reversed clockwise direction, all orientations
	// flipped. Clockwise listing: A-, D-, C-, B-.
	m, err := genome.New([]genome.Gene{
		{ID: "A", Orient: genome.Inverted},
		{ID: "D", Orient: genome.Inverted},
		{ID: "C", Orient: genome.Inverted},
		{ID: "B", Orient: genome.Inverted},
	})
	require.NoError(t, err)

	// Default: mirrors are distinct states.
	require.False(t, genome.Equal(a, m, false))

	// With mirror folding both collapse onto one representative.
	require.True(t, genome.Equal(a, m, true))
	require.Equal(t, a.Signature(true), m.Signature(true))
}

func TestEqual_NilSafety(t *testing.T) {
	a := mkGenome(t, "A")
	require.False(t, genome.Equal(a, nil, false))
	require.False(t, genome.Equal(nil, a, true))
	require.True(t, genome.Equal(nil, nil, false))
}
