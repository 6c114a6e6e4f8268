// Package prompt builds the task specifications of a generation run from the
// fixed per-kind agent profiles.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"quiz-crew/internal/domain"
)

// ContentTaskID and HintsTaskID name the two steps of a run.
func ContentTaskID(kind domain.ContentKind) string { return string(kind) + "_content" }

func HintsTaskID(kind domain.ContentKind) string { return string(kind) + "_hints" }

// ProfileFor returns the agent profile of a kind and stage.
// An unknown kind is a programming error.
func ProfileFor(kind domain.ContentKind, stage domain.TaskStage) AgentProfile {
	profiles := contentProfiles
	if stage == domain.StageHints {
		profiles = hintProfiles
	}
	profile, ok := profiles[kind]
	if !ok {
		panic(fmt.Sprintf("prompt: no %s profile for content kind %q", stage, kind))
	}
	return profile
}

// Build returns the ordered task specs for a request: the content task and,
// when hints are requested, a hint task that reads the content task's output.
func Build(req domain.GenerationRequest) []domain.TaskSpec {
	r := strings.NewReplacer(
		"{language}", req.Language,
		"{experience}", strconv.Itoa(req.ExperienceYears),
		"{username}", req.Username,
		"{subject}", hintSubjects[req.Kind],
	)

	content := render(r, ProfileFor(req.Kind, domain.StageContent))
	content.ID = ContentTaskID(req.Kind)
	content.Kind = req.Kind
	content.Stage = domain.StageContent

	specs := []domain.TaskSpec{content}
	if !req.IncludeHints {
		return specs
	}

	hints := render(r, ProfileFor(req.Kind, domain.StageHints))
	hints.ID = HintsTaskID(req.Kind)
	hints.Kind = req.Kind
	hints.Stage = domain.StageHints
	hints.ContextTaskIDs = []string{content.ID}

	return append(specs, hints)
}

func render(r *strings.Replacer, p AgentProfile) domain.TaskSpec {
	return domain.TaskSpec{
		Role:                   r.Replace(p.Role),
		Goal:                   r.Replace(p.Goal),
		Backstory:              r.Replace(p.Backstory),
		Description:            r.Replace(p.Description),
		ExpectedOutputContract: r.Replace(p.OutputContract),
	}
}
