package depthchart

import (
	"fmt"
	"testing"
)

const testPlayerCount = 7

// newTestPlayers builds players with consecutive numbers starting at base.
func newTestPlayers(t *testing.T, base int) []*Player {
	t.Helper()

	out := make([]*Player, 0, testPlayerCount)
	for i := 0; i < testPlayerCount; i++ {
		out = append(out, &Player{
			Number:    base + i,
			FirstName: fmt.Sprintf("First%d", i),
			LastName:  fmt.Sprintf("Last%d", i),
		})
	}
	return out
}

// newSeededChart mirrors a typical offense: three QBs and four LWRs.
func newSeededChart(t *testing.T, players []*Player) *DepthChart {
	t.Helper()

	chart := New("Tampa Bay Buccaneers")
	seed := []struct {
		position string
		player   *Player
		rank     int
	}{
		{"QB", players[0], 0},
		{"QB", players[1], 1},
		{"QB", players[2], 2},
		{"LWR", players[3], 0},
		{"LWR", players[4], 1},
		{"LWR", players[5], 2},
		{"LWR", players[6], 3},
	}
	for _, s := range seed {
		if err := chart.AddPlayerAt(s.position, s.player, s.rank); err != nil {
			t.Fatalf("seed %s #%d: %v", s.position, s.player.Number, err)
		}
	}
	return chart
}

func numbers(players []*Player) []int {
	out := make([]int, 0, len(players))
	for _, p := range players {
		out = append(out, p.Number)
	}
	return out
}
