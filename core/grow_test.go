package core_test

import (
	"testing"

	"github.com/lorepozo/skn/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// "Embryo of size 1: ... grow must still produce an edge to artifact 0."
func TestGrow_SingleEmbryoAlwaysConnects(t *testing.T) {
	net, err := core.NewNetwork(embryoOf(1), core.WithSeed(11))
	require.NoError(t, err)

	id, err := net.Grow("m", "B", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	a1, err := net.Artifact(1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(a1.Neighbors), 1, "connectedness on growth")
	assert.Contains(t, a1.Neighbors, 0)

	a0, err := net.Artifact(0)
	require.NoError(t, err)
	assert.Contains(t, a0.Neighbors, 1)
}

// Grow stamp law: the returned id's payload/mechanism_tag match what was
// passed in.
func TestGrow_StampsPayloadAndMechanismTag(t *testing.T) {
	net, err := core.NewNetwork(embryoOf(2), core.WithSeed(2))
	require.NoError(t, err)

	id, err := net.Grow("ec", `["XY"]`, 0)
	require.NoError(t, err)

	a, err := net.Artifact(id)
	require.NoError(t, err)
	assert.Equal(t, "ec", a.MechanismTag)
	assert.Equal(t, `["XY"]`, a.Payload)
}

// "grow must assert that resulting size does not exceed max_size" —
// scenario 5: given max_size=3 and a 3-artifact network, any grow fails.
func TestGrow_MaxSizeCap(t *testing.T) {
	net, err := core.NewNetwork(embryoOf(3), core.WithMaxSize(3))
	require.NoError(t, err)
	require.Equal(t, 3, net.Len())

	_, err = net.Grow("m", "overflow", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNetworkFull)
}

// Grow implicitly orients: the epoch log grows by exactly one for one Grow
// call (the epoch appended by the implicit orient inside Grow).
func TestGrow_ImplicitlyOrients(t *testing.T) {
	net, err := core.NewNetwork(embryoOf(2), core.WithSeed(4))
	require.NoError(t, err)
	before := net.EpochCount()

	_, err = net.Grow("m", "C", 0)
	require.NoError(t, err)

	assert.Equal(t, before+1, net.EpochCount())
}

// End-to-end scenario 1: single-artifact embryo, a deterministic
// mechanism records an access then grows once.
func TestScenario_SingleArtifactEmbryoDeterministicMechanism(t *testing.T) {
	net, err := core.NewNetwork([]core.EmbryoItem{{MechanismTag: "m", Payload: "A"}}, core.WithSeed(99))
	require.NoError(t, err)

	require.NoError(t, net.RecordAccess(0, 0, 7))
	id, err := net.Grow("m", "B", 0)
	require.NoError(t, err)
	require.Equal(t, 1, id)

	a0, err := net.Artifact(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), a0.Counts[0])
	assert.Equal(t, []int{1}, a0.Neighbors)

	a1, err := net.Artifact(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, a1.Neighbors)
	assert.Equal(t, "B", a1.Payload)

	// initial epoch + Grow's implicit orient epoch = 2 total.
	assert.Equal(t, 2, net.EpochCount())
}
