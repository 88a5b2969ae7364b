package domain

import dErrors "trailtail/pkg/domain-errors"

// Mode selects the narrative theme used by story and encounter generation.
type Mode string

const (
	ModeHistory Mode = "history"
	ModeFantasy Mode = "fantasy"
)

// ParseMode validates a caller-supplied narrative mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeHistory, ModeFantasy:
		return Mode(s), nil
	}
	return "", dErrors.Newf(dErrors.CodeInvalidInput, "mode must be history or fantasy; got %q", s)
}

// Title returns the mode with its first letter capitalized, for reward and
// badge labels.
func (m Mode) Title() string {
	switch m {
	case ModeHistory:
		return "History"
	case ModeFantasy:
		return "Fantasy"
	}
	return string(m)
}

func (m Mode) String() string { return string(m) }
