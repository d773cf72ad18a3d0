package depthchart

import (
	"slices"
	"strings"
)

// AppendRank places a player after everyone already in the row.
const AppendRank = -1

// PositionRow is the ordered depth of one position. Index 0 is the starter.
type PositionRow struct {
	players []*Player
}

func NewPositionRow() *PositionRow {
	return &PositionRow{}
}

func (r *PositionRow) AddPlayer(p *Player) error {
	return r.AddPlayerAt(p, AppendRank)
}

// AddPlayerAt inserts p at rank, shifting the player at rank and everyone
// after it one place down. A negative rank appends.
func (r *PositionRow) AddPlayerAt(p *Player, rank int) error {
	if err := ValidatePlayer(p); err != nil {
		return err
	}
	if err := validateRank(rank, len(r.players)); err != nil {
		return err
	}

	if rank < 0 {
		r.players = append(r.players, p)
		return nil
	}
	r.players = slices.Insert(r.players, rank, p)
	return nil
}

func (r *PositionRow) Len() int {
	return len(r.players)
}

func (r *PositionRow) Players() []*Player {
	return append(make([]*Player, 0, len(r.players)), r.players...)
}

// IndexOf returns the index of the first player numbered like p, or -1.
func (r *PositionRow) IndexOf(p *Player) int {
	return slices.IndexFunc(r.players, p.Equal)
}

func (r *PositionRow) Contains(p *Player) bool {
	return r.IndexOf(p) >= 0
}

// PlayersAfter returns a copy of every player ranked below index.
func (r *PositionRow) PlayersAfter(index int) []*Player {
	if index < 0 || index+1 >= len(r.players) {
		return []*Player{}
	}
	return slices.Clone(r.players[index+1:])
}

// Remove drops the first player numbered like p and returns the stored entry.
func (r *PositionRow) Remove(p *Player) (*Player, bool) {
	idx := r.IndexOf(p)
	if idx < 0 {
		return nil, false
	}
	removed := r.players[idx]
	r.players = slices.Delete(r.players, idx, idx+1)
	return removed, true
}

func (r *PositionRow) String() string {
	parts := make([]string, 0, len(r.players))
	for _, p := range r.players {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, ", ")
}
