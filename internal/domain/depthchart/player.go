package depthchart

import "fmt"

const (
	MinPlayerNumber = 1
	MaxPlayerNumber = 99
)

// Player is a rostered athlete. Number is the identity key; the other fields
// are descriptive only.
type Player struct {
	Number    int    `json:"number"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Note      string `json:"note,omitempty"`
}

// Equal reports whether both players carry the same number.
func (p *Player) Equal(other *Player) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.Number == other.Number
}

func (p *Player) Validate() error {
	return ValidatePlayer(p)
}

func (p *Player) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("(#%d - %s %s - %s)", p.Number, p.FirstName, p.LastName, p.Note)
}
