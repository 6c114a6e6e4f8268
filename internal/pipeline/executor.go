// Package pipeline runs the ordered generation tasks of a request against a
// model backend, feeding each task the outputs of the tasks it depends on.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quiz-crew/internal/config"
	"quiz-crew/internal/domain"
	"quiz-crew/internal/logger"
	"quiz-crew/internal/observability"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// CheckFunc validates the output of one task. A ParseFailure triggers a
// corrective re-prompt while attempts remain.
type CheckFunc func(taskIndex int, spec domain.TaskSpec, text string) error

type Config struct {
	CallTimeout        time.Duration
	Retry              RetryPolicy
	CorrectiveAttempts int
}

// ConfigFrom maps application settings to executor settings.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		CallTimeout: cfg.LLM.Timeout,
		Retry: RetryPolicy{
			MaxAttempts: cfg.Retry.MaxAttempts,
			InitialWait: cfg.Retry.InitialWait,
			MaxWait:     cfg.Retry.MaxWait,
			Multiplier:  cfg.Retry.Multiplier,
		},
		CorrectiveAttempts: cfg.Pipeline.CorrectiveAttempts,
	}
}

type Executor struct {
	backend domain.ModelBackend
	cfg     Config
}

func NewExecutor(backend domain.ModelBackend, cfg Config) *Executor {
	return &Executor{backend: backend, cfg: cfg}
}

// Run executes the graph strictly in order and returns one artifact per task.
// Any failure aborts the run; later tasks are never attempted.
func (e *Executor) Run(ctx context.Context, graph *TaskGraph, check CheckFunc) (artifacts []domain.RawArtifact, err error) {
	kind := graph.Spec(0).Kind
	ctx, span := observability.StartSpan(ctx, "pipeline.run",
		observability.AttributeKind(kind.String()),
		attribute.Int("pipeline.tasks", graph.Len()),
		attribute.String("llm.model", e.backend.ModelID()),
	)
	defer observability.FinishSpan(span, &err)

	log := logger.Get().With(zap.String("kind", kind.String()))

	for i := 0; i < graph.Len(); i++ {
		spec := graph.Spec(i)
		if ctxErr := ctx.Err(); ctxErr != nil {
			log.Info("Run cancelled before task", zap.String("task", spec.ID), zap.Error(ctxErr))
			return nil, domain.NewBackendError(fmt.Errorf("run cancelled before task %s: %w", spec.ID, ctxErr), false)
		}

		start := time.Now()
		text, err := e.runTask(ctx, graph, i, check)
		if err != nil {
			log.Warn("Task failed",
				zap.String("task", spec.ID),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err))
			return nil, err
		}
		log.Debug("Task completed",
			zap.String("task", spec.ID),
			zap.Int("output_chars", len(text)),
			zap.Duration("duration", time.Since(start)))

		if err := graph.Record(domain.RawArtifact{TaskIndex: i, TaskID: spec.ID, Text: text}); err != nil {
			return nil, err
		}
	}

	return graph.Artifacts(), nil
}

func (e *Executor) runTask(ctx context.Context, graph *TaskGraph, i int, check CheckFunc) (text string, err error) {
	spec := graph.Spec(i)
	ctx, span := observability.StartSpan(ctx, "pipeline.task",
		observability.AttributeTask(spec.ID),
		attribute.String("pipeline.stage", string(spec.Stage)),
	)
	defer observability.FinishSpan(span, &err)

	deps, err := graph.ResolveContextFor(i)
	if err != nil {
		return "", err
	}
	prompt := BuildPrompt(spec, deps)

	text, err = e.call(ctx, prompt)
	if err != nil {
		return "", err
	}
	if check == nil {
		return text, nil
	}

	for attempt := 0; ; attempt++ {
		checkErr := check(i, spec, text)
		if checkErr == nil {
			span.SetAttributes(attribute.String("validation.result", "ok"))
			return text, nil
		}
		if !errors.Is(checkErr, domain.ErrParseFailure) || attempt >= e.cfg.CorrectiveAttempts {
			span.SetAttributes(attribute.String("validation.result", "failed"))
			return "", checkErr
		}

		logger.Get().Warn("Task output rejected, re-prompting",
			zap.String("task", spec.ID),
			zap.Int("corrective_attempt", attempt+1),
			zap.Error(checkErr))
		span.SetAttributes(attribute.Int("pipeline.corrective_attempt", attempt+1))

		text, err = e.call(ctx, CorrectivePrompt(prompt, text, checkErr))
		if err != nil {
			return "", err
		}
	}
}

// call issues one backend call, retrying transient failures per the policy.
func (e *Executor) call(ctx context.Context, prompt domain.Prompt) (string, error) {
	var lastErr error
	attempts := e.cfg.Retry.attempts()

	for attempt := 0; attempt < attempts; attempt++ {
		text, err := e.callOnce(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !domain.IsTransient(err) {
			return "", err
		}
		if attempt == attempts-1 {
			break
		}

		wait := e.cfg.Retry.Backoff(attempt)
		logger.Get().Debug("Retrying backend call",
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.Error(err))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", domain.NewBackendError(ctx.Err(), false)
		case <-timer.C:
		}
	}

	return "", lastErr
}

func (e *Executor) callOnce(ctx context.Context, prompt domain.Prompt) (string, error) {
	callCtx := ctx
	if e.cfg.CallTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.cfg.CallTimeout)
		defer cancel()
	}

	text, err := e.backend.Generate(callCtx, prompt)
	if err == nil {
		return text, nil
	}

	// Parent cancellation is final; a per-call deadline is worth another try.
	if ctx.Err() != nil {
		return "", domain.NewBackendError(ctx.Err(), false)
	}
	if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return "", domain.NewBackendError(
			fmt.Errorf("model call exceeded %s: %w", e.cfg.CallTimeout, context.DeadlineExceeded), true)
	}

	var de *domain.DomainError
	if errors.As(err, &de) && de.Code == domain.CodeBackendError {
		return "", err
	}
	return "", domain.NewBackendError(err, true)
}

// BuildPrompt renders a task and the outputs it depends on into a prompt.
func BuildPrompt(spec domain.TaskSpec, deps []domain.RawArtifact) domain.Prompt {
	var system strings.Builder
	system.WriteString(spec.Role)
	if spec.Goal != "" {
		system.WriteString("\n\nYour goal: ")
		system.WriteString(spec.Goal)
	}
	if spec.Backstory != "" {
		system.WriteString("\n\n")
		system.WriteString(spec.Backstory)
	}

	var user strings.Builder
	user.WriteString(spec.Description)
	user.WriteString("\n\nExpected output:\n")
	user.WriteString(spec.ExpectedOutputContract)
	for _, dep := range deps {
		user.WriteString("\n\nContext from ")
		user.WriteString(dep.TaskID)
		user.WriteString(":\n")
		user.WriteString(dep.Text)
	}

	return domain.Prompt{System: system.String(), User: user.String()}
}

// CorrectivePrompt asks the model to fix an output that failed validation.
func CorrectivePrompt(original domain.Prompt, previous string, reason error) domain.Prompt {
	var user strings.Builder
	user.WriteString(original.User)
	user.WriteString("\n\nYour previous response could not be used: ")
	user.WriteString(reason.Error())
	user.WriteString("\n\nPrevious response:\n")
	user.WriteString(previous)
	user.WriteString("\n\nReturn a corrected response that follows the expected output exactly.")
	return domain.Prompt{System: original.System, User: user.String()}
}
