package view

import (
	"sort"

	"statusboard/internal/api"
)

// SolutionGroup is one heading of the environment list.
type SolutionGroup struct {
	Label        string
	Environments []api.Environment
}

// GroupBySolution groups environments by trimmed solution label.
// Labels sort lexicographically with UNASSIGNED always last; each group
// keeps the order the environments were given in.
func GroupBySolution(envs []api.Environment) []SolutionGroup {
	index := make(map[string]int)
	var groups []SolutionGroup
	for _, env := range envs {
		label := env.Solution()
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, SolutionGroup{Label: label})
		}
		groups[i].Environments = append(groups[i].Environments, env)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i].Label, groups[j].Label
		if a == api.UnassignedSolution {
			return false
		}
		if b == api.UnassignedSolution {
			return true
		}
		return a < b
	})
	return groups
}

// OrderedEnvironments flattens the groups into display order.
// The environment cursor indexes into this slice.
func OrderedEnvironments(envs []api.Environment) []api.Environment {
	out := make([]api.Environment, 0, len(envs))
	for _, g := range GroupBySolution(envs) {
		out = append(out, g.Environments...)
	}
	return out
}

// DisplayIndex returns the position of id in display order, or -1.
func DisplayIndex(envs []api.Environment, id int64) int {
	for i, env := range OrderedEnvironments(envs) {
		if env.ID == id {
			return i
		}
	}
	return -1
}
