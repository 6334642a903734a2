package playerstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopRanksAndTruncates(t *testing.T) {
	leaders := make([]Leader, 25)
	for i := range leaders {
		leaders[i] = Leader{Player: Player{ID: i + 1}, Goals: 30 - i}
	}

	got := Top(leaders, LeaderboardSize)

	assert.Len(t, got, 20)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, 1, got[0].Player.ID)
	assert.Equal(t, 20, got[19].Rank)
	assert.Len(t, Top(leaders[:3], LeaderboardSize), 3)
	assert.Empty(t, Top(nil, LeaderboardSize))
}
