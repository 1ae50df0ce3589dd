package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

const anonymousUser = "anonymous"

// AgentBackend runs prompts through an adk llm agent. Every call gets its
// own session, removed once the final response has been read.
type AgentBackend struct {
	name     string
	runner   *runner.Runner
	sessions session.Service
}

func NewAgentBackend(ctx context.Context, apiKey, modelName, agentName string) (*AgentBackend, error) {
	llm, err := gemini.NewModel(ctx, modelName, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}
	return newAgentBackend(llm, agentName, session.InMemoryService())
}

func newAgentBackend(llm model.LLM, agentName string, sessions session.Service) (*AgentBackend, error) {
	careerAgent, err := llmagent.New(llmagent.Config{
		Name:        agentName,
		Model:       llm,
		Description: "Recommend careers and skill pipelines",
		Instruction: agentInstruction(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	r, err := runner.New(runner.Config{
		AppName:        careerAgent.Name(),
		Agent:          careerAgent,
		SessionService: sessions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	return &AgentBackend{name: careerAgent.Name(), runner: r, sessions: sessions}, nil
}

func (b *AgentBackend) Generate(ctx context.Context, req Request) (output string, err error) {
	userID := req.UserID
	if userID == "" {
		userID = anonymousUser
	}

	created, err := b.sessions.Create(ctx, &session.CreateRequest{
		AppName:   b.name,
		UserID:    userID,
		SessionID: uuid.NewString(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create agent session: %w", err)
	}
	defer func() {
		delErr := b.sessions.Delete(context.WithoutCancel(ctx), &session.DeleteRequest{
			AppName:   created.Session.AppName(),
			UserID:    created.Session.UserID(),
			SessionID: created.Session.ID(),
		})
		if delErr != nil && err == nil {
			err = fmt.Errorf("failed to delete agent session: %w", delErr)
		}
	}()

	msg, err := agentMessage(req)
	if err != nil {
		return "", err
	}

	stream := b.runner.Run(ctx, created.Session.UserID(), created.Session.ID(), &genai.Content{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: msg}},
	}, agent.RunConfig{})

	for event, err := range stream {
		if err != nil {
			return "", err
		}
		if event != nil && event.IsFinalResponse() && event.Content != nil && len(event.Content.Parts) > 0 {
			output = event.Content.Parts[0].Text
		}
	}
	return output, nil
}

// agentMessage appends the response schema to the prompt, since the agent
// is not configured for schema mode.
func agentMessage(req Request) (string, error) {
	if req.Schema == nil {
		return req.Prompt, nil
	}
	schema, err := json.MarshalIndent(req.Schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render response schema: %w", err)
	}
	return fmt.Sprintf("%s\nReturn your result as JSON matching this schema:\n%s\n", req.Prompt, schema), nil
}
