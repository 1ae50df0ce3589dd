package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/muhammadolammi/futureframe/internal/config"
	"github.com/muhammadolammi/futureframe/internal/generator"
)

func newDynamoClient(ctx context.Context, cfg config.AWSConfig) (*dynamodb.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating aws config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		// local DynamoDB or a test double
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	}), nil
}

func newBackend(ctx context.Context, cfg config.GeneratorConfig) (generator.Backend, error) {
	switch cfg.Backend {
	case config.BackendAgent:
		return generator.NewAgentBackend(ctx, cfg.APIKey, cfg.Model, cfg.AgentName)
	case config.BackendGenAI:
		return generator.NewGenAIBackend(ctx, cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown generator backend %q", cfg.Backend)
	}
}
