package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewController_RejectsEmpty(t *testing.T) {
	_, err := NewController(0)
	assert.Error(t, err)
}

func TestController_TwentyOneAdvancesReachLastSlide(t *testing.T) {
	c, err := NewController(22)
	require.NoError(t, err)

	for i := 0; i < 21; i++ {
		require.True(t, c.Advance(), "advance %d", i+1)
	}
	assert.Equal(t, 21, c.Index())
	assert.False(t, c.Advance(), "22nd advance is a no-op")
	assert.Equal(t, 21, c.Index())
}

func TestController_RetreatAtStart(t *testing.T) {
	c, err := NewController(3)
	require.NoError(t, err)
	assert.False(t, c.Retreat())
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.CanRetreat())
	assert.True(t, c.CanAdvance())
}

func TestController_ObserversSeeEffectiveChangesOnly(t *testing.T) {
	c, err := NewController(3)
	require.NoError(t, err)

	var changes []Change
	c.OnChange(func(ch Change) { changes = append(changes, ch) })

	c.Retreat()
	c.Advance()
	c.Advance()
	c.Advance()
	c.Apply(None)
	c.Retreat()

	assert.Equal(t, []Change{
		{From: 0, To: 1, Command: Advance},
		{From: 1, To: 2, Command: Advance},
		{From: 2, To: 1, Command: Retreat},
	}, changes)
}

func TestController_ObserverOrder(t *testing.T) {
	c, err := NewController(2)
	require.NoError(t, err)

	var order []string
	c.OnChange(func(Change) { order = append(order, "first") })
	c.OnChange(func(Change) { order = append(order, "second") })

	ch, ok := c.Apply(Advance)
	require.True(t, ok)
	assert.Equal(t, Change{From: 0, To: 1, Command: Advance}, ch)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, State{Index: 1}, c.State())
	assert.Equal(t, 2, c.Total())
}
