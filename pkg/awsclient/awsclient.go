// Package awsclient cria os clients AWS usados pelo serviço a partir de uma
// única aws.Config carregada no boot.
package awsclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ErrEmptyParameter: parâmetro existe no SSM mas sem valor
var ErrEmptyParameter = errors.New("awsclient: parameter has no value")

// ParameterClient abstrai o SSM (permite Mocking)
type ParameterClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// LoadConfig carrega a configuração da AWS (env vars, profile, IAM role).
func LoadConfig(ctx context.Context, region string) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("awsclient: load config: %w", err)
	}
	return cfg, nil
}

// NewDynamoClient cria o client do DynamoDB. endpoint aponta para um
// DynamoDB local (ex: http://localhost:8000) quando informado.
func NewDynamoClient(cfg aws.Config, endpoint string) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

func NewParameterClient(cfg aws.Config) *ssm.Client {
	return ssm.NewFromConfig(cfg)
}

// GetParameter lê um parâmetro do Parameter Store, com decriptação.
func GetParameter(ctx context.Context, client ParameterClient, path string) (string, error) {
	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(path),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("awsclient: ssm get parameter %s: %w", path, err)
	}
	if out == nil || out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("%w: %s", ErrEmptyParameter, path)
	}
	return *out.Parameter.Value, nil
}
