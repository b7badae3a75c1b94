package state

import "statusboard/internal/api"

// Board is the client-side copy of the environment collection and the selection.
// When CurrentEnvID is set it names an environment present in Environments.
type Board struct {
	Environments []api.Environment
	CurrentEnvID *int64
}

// ReplaceEnvironments swaps in a freshly loaded collection and drops a selection
// that no longer exists. It reports whether the selection was cleared.
func (b *Board) ReplaceEnvironments(envs []api.Environment) bool {
	b.Environments = append([]api.Environment(nil), envs...)
	if b.CurrentEnvID != nil && b.indexOf(*b.CurrentEnvID) < 0 {
		b.CurrentEnvID = nil
		return true
	}
	return false
}

// AutoSelectFirst selects the first environment when nothing is selected.
func (b *Board) AutoSelectFirst() (api.Environment, bool) {
	if b.CurrentEnvID != nil || len(b.Environments) == 0 {
		return api.Environment{}, false
	}
	first := b.Environments[0]
	id := first.ID
	b.CurrentEnvID = &id
	return first, true
}

// Append adds a newly created environment to the end of the collection.
func (b *Board) Append(env api.Environment) {
	b.Environments = append(b.Environments, env)
}

// Replace swaps the stored record with the same id. It reports whether one was found.
func (b *Board) Replace(env api.Environment) bool {
	idx := b.indexOf(env.ID)
	if idx < 0 {
		return false
	}
	b.Environments[idx] = env
	return true
}

// Remove deletes an environment and reports whether it was the selection.
func (b *Board) Remove(id int64) bool {
	idx := b.indexOf(id)
	if idx >= 0 {
		b.Environments = append(b.Environments[:idx:idx], b.Environments[idx+1:]...)
	}
	if b.CurrentEnvID != nil && *b.CurrentEnvID == id {
		b.CurrentEnvID = nil
		return true
	}
	return false
}

// Select makes id the current environment. Unknown ids are ignored.
func (b *Board) Select(id int64) bool {
	if b.indexOf(id) < 0 {
		return false
	}
	b.CurrentEnvID = &id
	return true
}

// Current returns the selected environment.
func (b *Board) Current() (api.Environment, bool) {
	if b.CurrentEnvID == nil {
		return api.Environment{}, false
	}
	idx := b.indexOf(*b.CurrentEnvID)
	if idx < 0 {
		return api.Environment{}, false
	}
	return b.Environments[idx], true
}

// IsCurrent reports whether id is the selected environment.
func (b *Board) IsCurrent(id int64) bool {
	return b.CurrentEnvID != nil && *b.CurrentEnvID == id
}

// Find looks an environment up by id.
func (b *Board) Find(id int64) (api.Environment, bool) {
	idx := b.indexOf(id)
	if idx < 0 {
		return api.Environment{}, false
	}
	return b.Environments[idx], true
}

// Reset empties the store. Used on logout.
func (b *Board) Reset() {
	b.Environments = nil
	b.CurrentEnvID = nil
}

func (b *Board) indexOf(id int64) int {
	for i, env := range b.Environments {
		if env.ID == id {
			return i
		}
	}
	return -1
}
