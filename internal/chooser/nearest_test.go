package chooser

import (
	"swarm/internal/metadata"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestTo(t *testing.T) {
	lookup := lookupOf(map[string]metadata.Metadata{
		"REF":   at(0, 0),
		"FAR":   at(2, 0),
		"NEAR":  at(1, 0),
		"NOLOC": {Groups: []string{"g"}},
	})

	got, err := NearestTo("REF", lookup, []string{"FAR", "REF", "NOLOC", "NEAR", "UNKNOWN", "NEAR"})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "NEAR", got[0].Channel)
	assert.Equal(t, "FAR", got[1].Channel)
	assert.InDelta(t, 111.19, got[0].DistanceKm, 0.01)
	assert.InDelta(t, 222.39, got[1].DistanceKm, 0.01)
}

func TestNearestTo_NoCoordinates(t *testing.T) {
	lookup := lookupOf(map[string]metadata.Metadata{
		"NOLOC": {Groups: []string{"g"}},
		"OTHER": at(1, 1),
	})

	_, err := NearestTo("NOLOC", lookup, []string{"OTHER"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = NearestTo("MISSING", lookup, []string{"OTHER"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = NearestTo("OTHER", nil, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNearestTo_TiesByName(t *testing.T) {
	lookup := lookupOf(map[string]metadata.Metadata{
		"REF": at(0, 0),
		"B":   at(1, 0),
		"A":   at(-1, 0),
	})

	got, err := NearestTo("REF", lookup, []string{"B", "A"})

	require.NoError(t, err)
	assert.Equal(t, "A", got[0].Channel)
	assert.Equal(t, "B", got[1].Channel)
}

func TestTreeHighlight(t *testing.T) {
	lookup := lookupOf(map[string]metadata.Metadata{
		"G1": at(1, 0, "east"),
		"U1": at(0, 1),
	})
	tree := NewTree()
	tree.InsertSource("S")
	require.NoError(t, tree.Populate("S", []string{"U1", "G1"}, lookup))

	hl := tree.Highlight([]Neighbor{{Channel: "G1", DistanceKm: 1}, {Channel: "GONE", DistanceKm: 2}, {Channel: "U1", DistanceKm: 3}})

	require.Len(t, hl, 3)
	assert.True(t, hl[0].InTree)
	assert.Equal(t, Path{0, 1, 0}, hl[0].Path)
	assert.False(t, hl[1].InTree)
	assert.Nil(t, hl[1].Path)
	assert.True(t, hl[2].InTree)
	assert.Equal(t, Path{0, 0, 0}, hl[2].Path)
}

func TestTreeHighlight_FollowsSourceMoves(t *testing.T) {
	tree := NewTree()
	tree.InsertSource("M")
	require.NoError(t, tree.Populate("M", []string{"X"}, nil))

	p, ok := tree.PathOf("X")
	require.True(t, ok)
	assert.Equal(t, Path{0, 0, 0}, p)

	tree.InsertSource("A")
	p, ok = tree.PathOf("X")
	require.True(t, ok)
	assert.Equal(t, Path{1, 0, 0}, p)

	tree.RemoveSource("M")
	_, ok = tree.PathOf("X")
	assert.False(t, ok)
}
