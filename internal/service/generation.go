package service

import (
	"context"
	"fmt"
	"time"

	"quiz-crew/internal/assembler"
	"quiz-crew/internal/domain"
	"quiz-crew/internal/logger"
	"quiz-crew/internal/parser"
	"quiz-crew/internal/pipeline"
	"quiz-crew/internal/prompt"
	"quiz-crew/internal/util"

	"go.uber.org/zap"
)

// GenerationService runs the content and hint pipeline for one request.
type GenerationService interface {
	// Generate returns the assembled response and its generation ID.
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.FinalResponse, string, error)
	GetGeneration(ctx context.Context, generationID string) (*domain.GenerationRecord, error)
}

type generationServiceImpl struct {
	backend  domain.ModelBackend
	executor *pipeline.Executor
	parser   *parser.Parser
	store    GenerationStore
}

func NewGenerationService(backend domain.ModelBackend, execCfg pipeline.Config, p *parser.Parser, store GenerationStore) GenerationService {
	if store == nil {
		store = &noopGenerationStore{}
	}
	return &generationServiceImpl{
		backend:  backend,
		executor: pipeline.NewExecutor(backend, execCfg),
		parser:   p,
		store:    store,
	}
}

func (s *generationServiceImpl) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.FinalResponse, string, error) {
	kind, err := domain.ParseContentKind(string(req.Kind))
	if err != nil {
		return nil, "", err
	}
	req.Kind = kind

	generationID := util.NewULID()
	log := logger.Get().With(
		zap.String("generation_id", generationID),
		zap.String("kind", kind.String()),
	)
	start := time.Now()
	log.Info("Generation started",
		zap.String("language", req.Language),
		zap.Int("experience", req.ExperienceYears),
		zap.Bool("hints", req.IncludeHints))

	graph, err := pipeline.NewTaskGraph(prompt.Build(req))
	if err != nil {
		log.Error("Invalid task graph", zap.Error(err))
		return nil, "", err
	}

	check := func(_ int, spec domain.TaskSpec, text string) error {
		return s.parser.Check(spec, text)
	}
	artifacts, err := s.executor.Run(ctx, graph, check)
	if err != nil {
		log.Error("Pipeline run failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, "", err
	}

	content, err := s.parser.ParseContent(kind, artifactText(artifacts, prompt.ContentTaskID(kind)))
	if err != nil {
		log.Error("Content output rejected", zap.Error(err))
		return nil, "", err
	}
	logWarnings(log, "content", content.Warnings)

	var hints *domain.HintResult
	if req.IncludeHints {
		hints, err = s.parser.ParseHints(kind, artifactText(artifacts, prompt.HintsTaskID(kind)))
		if err != nil {
			log.Error("Hint output rejected", zap.Error(err))
			return nil, "", err
		}
		logWarnings(log, "hints", hints.Warnings)
	}

	resp, err := assembler.Assemble(kind, content, hints, req.IncludeHints)
	if err != nil {
		log.Error("Response assembly failed", zap.Error(err))
		return nil, "", err
	}

	record := &domain.GenerationRecord{
		ID:              generationID,
		Kind:            kind,
		Language:        req.Language,
		ExperienceYears: req.ExperienceYears,
		Username:        req.Username,
		Model:           s.backend.ModelID(),
		CreatedAt:       time.Now().UTC(),
		Response:        resp,
	}
	if err := s.store.Put(ctx, record); err != nil {
		log.Warn("Failed to store generation record", zap.Error(err))
	}

	log.Info("Generation completed", zap.Duration("duration", time.Since(start)))
	return resp, generationID, nil
}

func (s *generationServiceImpl) GetGeneration(ctx context.Context, generationID string) (*domain.GenerationRecord, error) {
	if !util.IsULID(generationID) {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("invalid generation id: %q", generationID))
	}
	return s.store.Get(ctx, generationID)
}

// artifactText returns the output of taskID, or "" when the task did not run.
func artifactText(artifacts []domain.RawArtifact, taskID string) string {
	for _, a := range artifacts {
		if a.TaskID == taskID {
			return a.Text
		}
	}
	return ""
}

func logWarnings(log *zap.Logger, stage string, warnings []string) {
	for _, w := range warnings {
		log.Warn("Advisory validation warning", zap.String("stage", stage), zap.String("warning", w))
	}
}
