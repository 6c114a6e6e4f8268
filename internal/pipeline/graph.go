package pipeline

import (
	"fmt"

	"quiz-crew/internal/domain"
)

// TaskGraph is the request-scoped, ordered set of tasks of one run together
// with the outputs recorded so far. Context references always point to an
// earlier task, so declaration order is a valid execution order.
type TaskGraph struct {
	specs   []domain.TaskSpec
	index   map[string]int
	outputs []domain.RawArtifact
}

// NewTaskGraph validates specs and returns a graph ready to execute.
func NewTaskGraph(specs []domain.TaskSpec) (*TaskGraph, error) {
	if len(specs) == 0 {
		return nil, domain.NewInternalError("task graph has no tasks", nil)
	}

	index := make(map[string]int, len(specs))
	for i, spec := range specs {
		if spec.ID == "" {
			return nil, domain.NewInternalError(fmt.Sprintf("task %d has no id", i), nil)
		}
		if _, dup := index[spec.ID]; dup {
			return nil, domain.NewInternalError(fmt.Sprintf("duplicate task id %q", spec.ID), nil)
		}
		for _, ref := range spec.ContextTaskIDs {
			if _, earlier := index[ref]; !earlier {
				return nil, domain.NewInternalError(
					fmt.Sprintf("task %q references %q which is not an earlier task", spec.ID, ref), nil)
			}
		}
		index[spec.ID] = i
	}

	return &TaskGraph{
		specs:   append([]domain.TaskSpec(nil), specs...),
		index:   index,
		outputs: make([]domain.RawArtifact, 0, len(specs)),
	}, nil
}

func (g *TaskGraph) Len() int { return len(g.specs) }

// Spec returns the i-th task in declaration order.
func (g *TaskGraph) Spec(i int) domain.TaskSpec { return g.specs[i] }

// Record stores the output of the next task. Outputs arrive in order.
func (g *TaskGraph) Record(artifact domain.RawArtifact) error {
	next := len(g.outputs)
	if next >= len(g.specs) {
		return domain.NewInternalError("all tasks already recorded", nil)
	}
	if artifact.TaskIndex != next || artifact.TaskID != g.specs[next].ID {
		return domain.NewInternalError(
			fmt.Sprintf("out of order output for task %q (index %d), expected %q (index %d)",
				artifact.TaskID, artifact.TaskIndex, g.specs[next].ID, next), nil)
	}
	g.outputs = append(g.outputs, artifact)
	return nil
}

// ResolveContextFor returns the outputs of the tasks the i-th task reads,
// in the order they are declared on the task.
func (g *TaskGraph) ResolveContextFor(i int) ([]domain.RawArtifact, error) {
	if i < 0 || i >= len(g.specs) {
		return nil, domain.NewInternalError(fmt.Sprintf("task index %d out of range", i), nil)
	}
	refs := g.specs[i].ContextTaskIDs
	if len(refs) == 0 {
		return nil, nil
	}

	resolved := make([]domain.RawArtifact, 0, len(refs))
	for _, ref := range refs {
		idx := g.index[ref]
		if idx >= len(g.outputs) {
			return nil, domain.NewInternalError(
				fmt.Sprintf("task %q needs output of %q which has not run", g.specs[i].ID, ref), nil)
		}
		resolved = append(resolved, g.outputs[idx])
	}
	return resolved, nil
}

// Artifacts returns the recorded outputs in execution order.
func (g *TaskGraph) Artifacts() []domain.RawArtifact {
	return append([]domain.RawArtifact(nil), g.outputs...)
}
