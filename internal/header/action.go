package header

import (
	"fmt"
	"strings"

	"license-applier/internal/license"
)

//go:generate go tool stringer -type=Action -linecomment -output=action_string.go

// Action selects what Apply does with the header region.
type Action int

const (
	_ Action = iota // zero value is not a valid action

	ActionCheck    // check
	ActionReformat // reformat
	ActionUpdate   // update
	ActionRemove   // remove
)

// DefaultAction is used when no action is configured.
const DefaultAction = ActionReformat

// Actions lists every valid action.
func Actions() []Action {
	return []Action{ActionCheck, ActionReformat, ActionUpdate, ActionRemove}
}

// ParseAction resolves an action name, ignoring case.
// An empty name yields DefaultAction.
func ParseAction(name string) (Action, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultAction, nil
	}

	for _, a := range Actions() {
		if strings.EqualFold(name, a.String()) {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown action %q", license.ErrConfiguration, name)
}

// IsValid reports whether a is one of the defined actions.
func (a Action) IsValid() bool {
	return a >= ActionCheck && a <= ActionRemove
}
