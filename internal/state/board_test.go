package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statusboard/internal/api"
)

func envs(ids ...int64) []api.Environment {
	out := make([]api.Environment, 0, len(ids))
	for _, id := range ids {
		out = append(out, api.Environment{ID: id, Name: "env", Status: api.StatusOK})
	}
	return out
}

func TestBoard_ReplaceReconcilesSelection(t *testing.T) {
	var b Board
	b.ReplaceEnvironments(envs(1, 2, 3))
	require.True(t, b.Select(2))

	cleared := b.ReplaceEnvironments(envs(1, 2))
	assert.False(t, cleared)
	assert.True(t, b.IsCurrent(2))

	cleared = b.ReplaceEnvironments(envs(1, 3))
	assert.True(t, cleared)
	assert.Nil(t, b.CurrentEnvID)
}

func TestBoard_AutoSelectFirst(t *testing.T) {
	var b Board
	_, ok := b.AutoSelectFirst()
	assert.False(t, ok, "empty board selects nothing")

	b.ReplaceEnvironments(envs(5, 6))
	env, ok := b.AutoSelectFirst()
	require.True(t, ok)
	assert.Equal(t, int64(5), env.ID)

	b.Select(6)
	_, ok = b.AutoSelectFirst()
	assert.False(t, ok, "existing selection is kept")
	assert.True(t, b.IsCurrent(6))
}

func TestBoard_RemoveSelectedClearsSelection(t *testing.T) {
	var b Board
	b.ReplaceEnvironments(envs(1, 2, 3))
	b.Select(2)

	assert.False(t, b.Remove(3))
	assert.True(t, b.IsCurrent(2))

	assert.True(t, b.Remove(2))
	assert.Nil(t, b.CurrentEnvID)
	assert.Len(t, b.Environments, 1)
	_, ok := b.Current()
	assert.False(t, ok)
}

func TestBoard_ReplaceAndAppend(t *testing.T) {
	var b Board
	b.ReplaceEnvironments(envs(1))
	b.Append(api.Environment{ID: 2, Name: "new", Status: api.StatusOK})
	require.True(t, b.Select(2))

	updated := api.Environment{ID: 2, Name: "new", Status: api.StatusIssues}
	assert.True(t, b.Replace(updated))
	current, ok := b.Current()
	require.True(t, ok)
	assert.Equal(t, api.StatusIssues, current.Status)

	assert.False(t, b.Replace(api.Environment{ID: 99}))
	assert.False(t, b.Select(99))
}

func TestBoard_ReplaceDoesNotAliasInput(t *testing.T) {
	input := envs(1, 2)
	var b Board
	b.ReplaceEnvironments(input)
	b.Remove(1)
	assert.Equal(t, int64(1), input[0].ID)
}

func TestBoard_Reset(t *testing.T) {
	var b Board
	b.ReplaceEnvironments(envs(1))
	b.Select(1)
	b.Reset()
	assert.Empty(t, b.Environments)
	assert.Nil(t, b.CurrentEnvID)
}
