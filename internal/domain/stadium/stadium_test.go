package stadium

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	s, ok := Lookup(40)
	require.True(t, ok)
	assert.Equal(t, "Anfield", s.Name)
	assert.Equal(t, 40, s.TeamID)
	assert.InDelta(t, 53.4308, s.Lat, 1e-9)
	assert.Equal(t, 61276, s.Capacity)

	_, ok = Lookup(9999)
	assert.False(t, ok)
}

func TestAllIsSortedAndComplete(t *testing.T) {
	all := All()
	require.Len(t, all, 23)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].TeamID, all[i].TeamID)
	}
}

func TestSearchURL(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/search?q=St+James%27+Park+site%3Apremierleague.com",
		SearchURL("St James' Park"))
}
