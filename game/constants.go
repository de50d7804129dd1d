package game

import "github.com/pkg/errors"

type BoardState int

const (
	Fresh BoardState = iota
	InProgress
	Won
	Lost
)

var boardStateNames = map[BoardState]string{
	Fresh:      "fresh",
	InProgress: "in_progress",
	Won:        "won",
	Lost:       "lost",
}

func (state BoardState) String() string {
	if name, ok := boardStateNames[state]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no further reveal or flag is accepted
func (state BoardState) IsTerminal() bool {
	return state == Won || state == Lost
}

// Outcome of a single reveal
type Outcome int

const (
	Continue Outcome = iota
	Win
	Loss
)

func (outcome Outcome) String() string {
	switch outcome {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "continue"
	}
}

func (outcome Outcome) MarshalText() ([]byte, error) {
	return []byte(outcome.String()), nil
}

func (state BoardState) MarshalText() ([]byte, error) {
	return []byte(state.String()), nil
}

func (state *BoardState) UnmarshalText(text []byte) error {
	for candidate, name := range boardStateNames {
		if name == string(text) {
			*state = candidate
			return nil
		}
	}
	return errors.Errorf("unknown board state %q", text)
}

func (outcome *Outcome) UnmarshalText(text []byte) error {
	for _, candidate := range []Outcome{Continue, Win, Loss} {
		if candidate.String() == string(text) {
			*outcome = candidate
			return nil
		}
	}
	return errors.Errorf("unknown outcome %q", text)
}
