package depthchart

import (
	"maps"
	"slices"
)

// DepthChart maps position labels to their ranked rows for one team.
// Labels are case-sensitive.
type DepthChart struct {
	teamName string
	rows     map[string]*PositionRow
}

// Entry is one position of the chart in rank order.
type Entry struct {
	Position string    `json:"position"`
	Players  []*Player `json:"players"`
}

func New(teamName string) *DepthChart {
	return &DepthChart{
		teamName: teamName,
		rows:     make(map[string]*PositionRow),
	}
}

func (c *DepthChart) TeamName() string {
	return c.teamName
}

func (c *DepthChart) AddPlayer(position string, p *Player) error {
	return c.AddPlayerAt(position, p, AppendRank)
}

// AddPlayerAt puts p at rank within position. The player previously at rank
// and everyone below move one place down. A negative rank appends.
func (c *DepthChart) AddPlayerAt(position string, p *Player, rank int) error {
	if err := NewValidator().position(position).player(p).Err(); err != nil {
		return err
	}

	row, exists := c.rows[position]
	if !exists {
		row = NewPositionRow()
	}
	if err := row.AddPlayerAt(p, rank); err != nil {
		return err
	}
	if !exists {
		c.rows[position] = row
	}
	return nil
}

// Row looks up a position without validating the label.
func (c *DepthChart) Row(position string) (*PositionRow, bool) {
	row, ok := c.rows[position]
	return row, ok
}

// RemovePlayer returns the removed player, or nil when the position is
// unknown or the player is not listed there.
func (c *DepthChart) RemovePlayer(position string, p *Player) (*Player, error) {
	if err := NewValidator().position(position).player(p).Err(); err != nil {
		return nil, err
	}

	row, ok := c.rows[position]
	if !ok {
		return nil, nil
	}
	removed, ok := row.Remove(p)
	if !ok {
		return nil, nil
	}
	return removed, nil
}

// Backups lists everyone ranked below p at position. The result is a copy and
// is empty when p is not listed there.
func (c *DepthChart) Backups(position string, p *Player) ([]*Player, error) {
	if err := NewValidator().position(position).player(p).Err(); err != nil {
		return nil, err
	}

	row, ok := c.rows[position]
	if !ok {
		return []*Player{}, nil
	}
	idx := row.IndexOf(p)
	if idx < 0 {
		return []*Player{}, nil
	}
	return row.PlayersAfter(idx), nil
}

// Positions returns every tracked label in sorted order, including positions
// whose rows have been emptied.
func (c *DepthChart) Positions() []string {
	return slices.Sorted(maps.Keys(c.rows))
}

func (c *DepthChart) FullDepthChart() []Entry {
	positions := c.Positions()
	out := make([]Entry, 0, len(positions))
	for _, position := range positions {
		out = append(out, Entry{
			Position: position,
			Players:  c.rows[position].Players(),
		})
	}
	return out
}
