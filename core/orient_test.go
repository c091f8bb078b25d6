package core_test

import (
	"testing"

	"github.com/lorepozo/skn/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func embryoOf(n int) []core.EmbryoItem {
	items := make([]core.EmbryoItem, n)
	for i := range items {
		items[i] = core.EmbryoItem{MechanismTag: "m", Payload: "x"}
	}
	return items
}

// "n < context_min_size: orient returns the entire graph" (spec.md §8).
func TestOrient_SmallNetworkReturnsEntireGraph(t *testing.T) {
	net, err := core.NewNetwork(embryoOf(2), core.WithContextMinSize(5), core.WithSeed(1))
	require.NoError(t, err)

	epochIdx, err := net.Orient(0, 0)
	require.NoError(t, err)

	ctx, err := net.EpochContext(epochIdx)
	require.NoError(t, err)
	assert.Equal(t, map[int]struct{}{0: {}, 1: {}}, ctx)
}

// "Embryo of size 1: ... orient always returns ctx = {0}" (spec.md §8).
func TestOrient_SingleArtifactEmbryoAlwaysCtxZero(t *testing.T) {
	net, err := core.NewNetwork(embryoOf(1), core.WithSeed(7))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		epochIdx, err := net.Orient(0, 0)
		require.NoError(t, err)
		ctx, err := net.EpochContext(epochIdx)
		require.NoError(t, err)
		assert.Equal(t, map[int]struct{}{0: {}}, ctx)
	}
}

func TestOrient_UnknownCenterErrors(t *testing.T) {
	net, err := core.NewNetwork(embryoOf(1))
	require.NoError(t, err)
	_, err = net.Orient(0, 99)
	assert.ErrorIs(t, err, core.ErrUnknownArtifact)
}

func TestOrient_AppendsExactlyOneEpoch(t *testing.T) {
	net, err := core.NewNetwork(embryoOf(3), core.WithSeed(3))
	require.NoError(t, err)
	before := net.EpochCount()
	_, err = net.Orient(0, 0)
	require.NoError(t, err)
	assert.Equal(t, before+1, net.EpochCount())
}

// Scenario 6, adapted to the embryo clique: in a 3-node complete graph,
// the frontier of any single node is every other node.
func TestFrontierOf_OneHop(t *testing.T) {
	net, err := core.NewNetwork(embryoOf(3))
	require.NoError(t, err)

	front0 := net.FrontierOf(map[int]struct{}{0: {}})
	assert.Equal(t, map[int]struct{}{1: {}, 2: {}}, front0)

	front1 := net.FrontierOf(map[int]struct{}{1: {}})
	assert.Equal(t, map[int]struct{}{0: {}, 2: {}}, front1)
}

func TestFrontierOf_Disjoint(t *testing.T) {
	net, err := core.NewNetwork(embryoOf(4), core.WithSeed(5))
	require.NoError(t, err)
	items := map[int]struct{}{0: {}, 1: {}}
	frontier := net.FrontierOf(items)
	for id := range frontier {
		_, inItems := items[id]
		assert.False(t, inItems, "frontier must be disjoint from items")
	}
}
