package genome_test

import (
	"testing"

	"github.com/katalvlaran/genecycle/genome"
	"github.com/stretchr/testify/require"
)

// mkGenome builds a genome of all-Normal genes in the given clockwise order.
func mkGenome(t *testing.T, ids ...genome.GeneID) *genome.Genome {
	t.Helper()
	order := make([]genome.Gene, len(ids))
	for i, id := range ids {
		order[i] = genome.Gene{ID: id, Orient: genome.Normal}
	}
	g, err := genome.New(order)
	require.NoError(t, err)

	return g
}

func TestNew_Validation(t *testing.T) {
	_, err := genome.New(nil)
	require.ErrorIs(t, err, genome.ErrEmptyGenome)

	_, err = genome.New([]genome.Gene{{ID: "A"}, {ID: ""}})
	require.ErrorIs(t, err, genome.ErrEmptyGeneID)

	_, err = genome.New([]genome.Gene{{ID: "A"}, {ID: "B"}, {ID: "A"}})
	require.ErrorIs(t, err, genome.ErrDuplicateGene)
}

func TestAccessors_Cycle(t *testing.T) {
	g := mkGenome(t, "A", "B", "C", "D")

	require.Equal(t, 4, g.Len())
	require.True(t, g.Has("C"))
	require.False(t, g.Has("Z"))

	s, err := g.Succ("D")
	require.NoError(t, err)
	require.Equal(t, genome.GeneID("A"), s)

	p, err := g.Pred("A")
	require.NoError(t, err)
	require.Equal(t, genome.GeneID("D"), p)

	o, err := g.Orientation("B")
	require.NoError(t, err)
	require.Equal(t, genome.Normal, o)

	_, err = g.Succ("Z")
	require.ErrorIs(t, err, genome.ErrGeneNotFound)

	require.NoError(t, g.Validate())
}

func TestGenes_DeterministicFromAnchor(t *testing.T) {
	// Listed starting at "C"; Genes must still start at the smallest ID.
	g := mkGenome(t, "C", "D", "A", "B")
	got := g.Genes()
	require.Len(t, got, 4)
	require.Equal(t, genome.GeneID("A"), got[0].ID)
	require.Equal(t, genome.GeneID("B"), got[1].ID)
	require.Equal(t, genome.GeneID("C"), got[2].ID)
	require.Equal(t, genome.GeneID("D"), got[3].ID)
}

func TestSegment(t *testing.T) {
	g := mkGenome(t, "A", "B", "C", "D", "E")

	seg, err := g.Segment("B", "D")
	require.NoError(t, err)
	require.Equal(t, []genome.GeneID{"B", "C", "D"}, seg)

	// Single-gene segment: {x} only, never the whole genome.
	seg, err = g.Segment("C", "C")
	require.NoError(t, err)
	require.Equal(t, []genome.GeneID{"C"}, seg)

	// Wrapping segment.
	seg, err = g.Segment("D", "A")
	require.NoError(t, err)
	require.Equal(t, []genome.GeneID{"D", "E", "A"}, seg)

	_, err = g.Segment("B", "Z")
	require.ErrorIs(t, err, genome.ErrGeneNotFound)
}

func TestLinkUnlinkFlip_Surgery(t *testing.T) {
	g := mkGenome(t, "A", "B", "C", "D")

	// Cut B out and reinsert after D: A→C→D→B→A.
	require.NoError(t, g.Unlink("A"))
	_, err := g.Succ("A")
	require.ErrorIs(t, err, genome.ErrUnlinkedGene)
	require.Error(t, g.Validate())

	require.NoError(t, g.Unlink("B"))
	require.NoError(t, g.Link("A", "C"))
	require.NoError(t, g.Unlink("D"))
	require.NoError(t, g.Link("D", "B"))
	require.NoError(t, g.Link("B", "A"))
	require.NoError(t, g.Validate())

	seg, err := g.Segment("A", "A")
	require.NoError(t, err)
	require.Equal(t, []genome.GeneID{"A"}, seg)
	s, err := g.Succ("A")
	require.NoError(t, err)
	require.Equal(t, genome.GeneID("C"), s)

	// Orientation flip is independent of linkage.
	require.NoError(t, g.Flip("C"))
	o, err := g.Orientation("C")
	require.NoError(t, err)
	require.Equal(t, genome.Inverted, o)
	require.NoError(t, g.Flip("C"))
	o, err = g.Orientation("C")
	require.NoError(t, err)
	require.Equal(t, genome.Normal, o)

	require.NoError(t, g.Unlink("A"))
	require.ErrorIs(t, g.Unlink("A"), genome.ErrUnlinkedGene)
	require.ErrorIs(t, g.Unlink("Z"), genome.ErrGeneNotFound)
	require.ErrorIs(t, g.Link("A", "Z"), genome.ErrGeneNotFound)
}

func TestClone_Independence(t *testing.T) {
	g := mkGenome(t, "A", "B", "C")
	c := g.Clone()
	require.NoError(t, c.Validate())
	require.Equal(t, g.Signature(false), c.Signature(false))

	// Mutating the clone must not disturb the original.
	require.NoError(t, c.Flip("B"))
	require.NoError(t, c.Unlink("A"))
	require.NoError(t, g.Validate())
	o, err := g.Orientation("B")
	require.NoError(t, err)
	require.Equal(t, genome.Normal, o)
}

func TestSameGeneSet(t *testing.T) {
	a := mkGenome(t, "A", "B", "C")
	b := mkGenome(t, "C", "A", "B")
	c := mkGenome(t, "A", "B", "D")
	d := mkGenome(t, "A", "B")

	require.True(t, genome.SameGeneSet(a, b))
	require.False(t, genome.SameGeneSet(a, c))
	require.False(t, genome.SameGeneSet(a, d))
}
