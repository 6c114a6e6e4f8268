package domain

// TaskStage distinguishes the content step from the hint step of a run.
type TaskStage string

const (
	StageContent TaskStage = "content"
	StageHints   TaskStage = "hints"
)

// TaskSpec describes one generation step executed by the model backend.
type TaskSpec struct {
	ID                     string
	Kind                   ContentKind
	Stage                  TaskStage
	Role                   string
	Goal                   string
	Backstory              string
	Description            string
	ExpectedOutputContract string
	// ContextTaskIDs name earlier tasks whose raw output is appended to this task's prompt.
	ContextTaskIDs []string
}

// RawArtifact is the verbatim model output of one executed task.
type RawArtifact struct {
	TaskIndex int
	TaskID    string
	Text      string
}
