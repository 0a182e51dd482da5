// Package handler implementa as rotas list e search como um único endpoint
// parametrizado: parse da condição, busca na tabela, ordenação e envelope.
package handler

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/raywall/item-name-api/document"
	"github.com/raywall/item-name-api/pkg/condition"
	"github.com/raywall/item-name-api/pkg/responder"
)

// Parser converte a query string em condição.
type Parser[C any] func(query map[string]string) (C, error)

// Fetcher busca os itens que satisfazem a condição.
type Fetcher[C any] func(ctx context.Context, cond C) ([]document.Document, error)

// ItemFinder é o que as rotas precisam do repositório de itens.
type ItemFinder interface {
	FindByIDs(ctx context.Context, cond condition.ListCondition) ([]document.Document, error)
	SearchByName(ctx context.Context, cond condition.SearchCondition) ([]document.Document, error)
}

// Handler é a forma comum consumida pelo transporte.
type Handler interface {
	Name() string
	Serve(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse
}

type Endpoint[C any] struct {
	name  string
	parse Parser[C]
	fetch Fetcher[C]
}

func NewEndpoint[C any](name string, parse Parser[C], fetch Fetcher[C]) *Endpoint[C] {
	return &Endpoint[C]{name: name, parse: parse, fetch: fetch}
}

// NewList monta a rota list (BatchGet por ids).
func NewList(finder ItemFinder) *Endpoint[condition.ListCondition] {
	return NewEndpoint[condition.ListCondition]("list", condition.ParseList, finder.FindByIDs)
}

// NewSearch monta a rota search (Scan por nome localizado).
func NewSearch(finder ItemFinder) *Endpoint[condition.SearchCondition] {
	return NewEndpoint[condition.SearchCondition]("search", condition.ParseSearch, finder.SearchByName)
}

func (e *Endpoint[C]) Name() string { return e.name }

// Serve nunca devolve erro: toda falha vira 400 ou 500 no envelope.
func (e *Endpoint[C]) Serve(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse) {
	defer func() {
		if r := recover(); r != nil {
			resp = responder.FromError(ctx, fmt.Errorf("handler: %s panicked: %v", e.name, r))
		}
	}()

	cond, err := e.parse(req.QueryStringParameters)
	if err != nil {
		return responder.FromError(ctx, err)
	}

	docs, err := e.fetch(ctx, cond)
	if err != nil {
		return responder.FromError(ctx, err)
	}

	document.SortByCategory(docs)

	log.Ctx(ctx).Debug().
		Str("endpoint", e.name).
		Int("results", len(docs)).
		Msg("query resolved")

	return responder.Success(ctx, cond, docs)
}
