package keymap

import "github.com/charmbracelet/bubbles/key"

// Resolver maps key strings to actions.
// It also implements help.KeyMap for the bubbles help component.
type Resolver struct {
	bindings map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys (for help/documentation)
	all      []Binding
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
		all:      bindings,
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.bindings[k] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(k string) Action {
	return r.bindings[k]
}

// KeysFor returns the keys bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// ShortHelp returns the bindings shown in the collapsed help line.
func (r *Resolver) ShortHelp() []key.Binding {
	short := []Action{ActionPlayPause, ActionNextTrack, ActionPrevTrack, ActionAdd, ActionHelp, ActionQuit}
	result := make([]key.Binding, 0, len(short))
	for _, action := range short {
		for _, b := range r.all {
			if b.Action == action {
				result = append(result, b.KeyBinding())
				break
			}
		}
	}
	return result
}

// FullHelp returns all bindings, one column per context.
func (r *Resolver) FullHelp() [][]key.Binding {
	var groups [][]key.Binding
	for _, ctx := range Contexts {
		var group []key.Binding
		for _, b := range r.all {
			if b.Context == ctx {
				group = append(group, b.KeyBinding())
			}
		}
		if len(group) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
