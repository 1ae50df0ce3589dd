// Package generator turns student profiles and job titles into career
// recommendations and skill pipelines using a generative model that answers
// in a declared JSON schema.
package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

const (
	minCareers = 4
	maxCareers = 5

	DefaultTimeout = 60 * time.Second
)

// Request is one prompt submitted to a model backend.
type Request struct {
	UserID string
	Prompt string
	Schema *genai.Schema
}

// Backend submits a prompt and returns the raw text of the model reply.
type Backend interface {
	Generate(ctx context.Context, req Request) (string, error)
}

type Generator struct {
	backend Backend
	timeout time.Duration
	log     zerolog.Logger
}

func New(backend Backend, timeout time.Duration, log zerolog.Logger) *Generator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Generator{
		backend: backend,
		timeout: timeout,
		log:     log.With().Str("component", "generator").Logger(),
	}
}

type userIDKey struct{}

// WithUserID tags ctx with the identity the generation runs for.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

func userIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}

func (g *Generator) RecommendCareers(ctx context.Context, in CareerInput) ([]CareerRecommendation, error) {
	const op = "recommend careers"

	raw, err := g.call(ctx, op, careerPrompt(in), careerListSchema)
	if err != nil {
		return nil, err
	}

	var careers []CareerRecommendation
	if err := json.Unmarshal(raw, &careers); err != nil {
		return nil, &GenerationError{Op: op, Kind: ErrSchemaMismatch, Err: err}
	}
	if n := len(careers); n < minCareers || n > maxCareers {
		return nil, &GenerationError{Op: op, Kind: ErrSchemaMismatch,
			Err: fmt.Errorf("expected %d-%d careers, got %d", minCareers, maxCareers, n)}
	}
	for i, c := range careers {
		switch {
		case strings.TrimSpace(c.Title) == "":
			return nil, &GenerationError{Op: op, Kind: ErrSchemaMismatch, Err: fmt.Errorf("career %d has no title", i+1)}
		case strings.TrimSpace(c.Description) == "":
			return nil, &GenerationError{Op: op, Kind: ErrSchemaMismatch, Err: fmt.Errorf("career %q has no description", c.Title)}
		case len(c.Skills) == 0:
			return nil, &GenerationError{Op: op, Kind: ErrSchemaMismatch, Err: fmt.Errorf("career %q has no skills", c.Title)}
		}
	}

	g.log.Debug().Int("careers", len(careers)).Msg("careers recommended")
	return careers, nil
}

func (g *Generator) GenerateSkillPipeline(ctx context.Context, jobTitle string) (*SkillPipeline, error) {
	const op = "generate skill pipeline"

	jobTitle = strings.TrimSpace(jobTitle)
	if jobTitle == "" {
		return nil, &GenerationError{Op: op, Kind: ErrInvalidInput, Err: errors.New("job title is required")}
	}

	raw, err := g.call(ctx, op, skillsPrompt(jobTitle), skillPipelineSchema)
	if err != nil {
		return nil, err
	}

	var entries []SkillPipelineEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &GenerationError{Op: op, Kind: ErrSchemaMismatch, Err: err}
	}
	if len(entries) == 0 {
		return nil, &GenerationError{Op: op, Kind: ErrSchemaMismatch, Err: errors.New("no skills returned")}
	}

	pipeline := NewSkillPipeline(jobTitle)
	for i, e := range entries {
		e.Skill = strings.TrimSpace(e.Skill)
		switch {
		case e.Skill == "":
			return nil, &GenerationError{Op: op, Kind: ErrSchemaMismatch, Err: fmt.Errorf("skill %d has no name", i+1)}
		case strings.TrimSpace(e.Description) == "":
			return nil, &GenerationError{Op: op, Kind: ErrSchemaMismatch, Err: fmt.Errorf("skill %q has no description", e.Skill)}
		case len(e.Skills) == 0:
			return nil, &GenerationError{Op: op, Kind: ErrSchemaMismatch, Err: fmt.Errorf("skill %q has no sub-skills", e.Skill)}
		}
		pipeline.Put(e)
	}

	g.log.Debug().Str("job_title", jobTitle).Int("skills", pipeline.Len()).Msg("skill pipeline generated")
	return pipeline, nil
}

func (g *Generator) call(ctx context.Context, op, prompt string, schema *genai.Schema) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	out, err := g.backend.Generate(ctx, Request{
		UserID: userIDFrom(ctx),
		Prompt: prompt,
		Schema: schema,
	})
	if err != nil {
		kind := ErrTransport
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			kind = ErrTimeout
		}
		g.log.Warn().Err(err).Str("op", op).Dur("elapsed", time.Since(start)).Msg("model call failed")
		return nil, &GenerationError{Op: op, Kind: kind, Err: err}
	}

	cleaned := CleanJson(out)
	if cleaned == "" {
		return nil, &GenerationError{Op: op, Kind: ErrEmptyResponse}
	}
	g.log.Debug().Str("op", op).Dur("elapsed", time.Since(start)).Int("bytes", len(cleaned)).Msg("model replied")
	return []byte(cleaned), nil
}
