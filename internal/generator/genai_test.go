package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	resp   *genai.GenerateContentResponse
	err    error
	model  string
	config *genai.GenerateContentConfig
	text   string
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.text = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	c := &genai.Content{Role: genai.RoleModel}
	for _, p := range parts {
		c.Parts = append(c.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: c}}}
}

func TestGenAIBackend_SchemaMode(t *testing.T) {
	m := &fakeModels{resp: textResponse(`[{"skill":`, `"SQL"}]`)}
	b := &GenAIBackend{models: m, model: "gemini-2.5-pro"}

	out, err := b.Generate(context.Background(), Request{Prompt: "Job Title: DBA", Schema: skillPipelineSchema})
	require.NoError(t, err)
	assert.Equal(t, `[{"skill":"SQL"}]`, out)

	assert.Equal(t, "gemini-2.5-pro", m.model)
	assert.Equal(t, "Job Title: DBA", m.text)
	require.NotNil(t, m.config)
	assert.Equal(t, "application/json", m.config.ResponseMIMEType)
	assert.Same(t, skillPipelineSchema, m.config.ResponseSchema)
}

func TestGenAIBackend_NoCandidates(t *testing.T) {
	b := &GenAIBackend{models: &fakeModels{resp: &genai.GenerateContentResponse{}}, model: "m"}

	out, err := b.Generate(context.Background(), Request{Prompt: "p"})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGenAIBackend_Blocked(t *testing.T) {
	resp := &genai.GenerateContentResponse{PromptFeedback: &genai.GenerateContentResponsePromptFeedback{
		BlockReason:        genai.BlockedReasonSafety,
		BlockReasonMessage: "unsafe",
	}}
	b := &GenAIBackend{models: &fakeModels{resp: resp}, model: "m"}

	_, err := b.Generate(context.Background(), Request{Prompt: "p"})
	assert.Error(t, err)
}

func TestGenAIBackend_CallError(t *testing.T) {
	cause := errors.New("503 unavailable")
	b := &GenAIBackend{models: &fakeModels{err: cause}, model: "m"}

	_, err := b.Generate(context.Background(), Request{Prompt: "p"})
	assert.ErrorIs(t, err, cause)
}
