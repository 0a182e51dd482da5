package transport

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/raywall/item-name-api/pkg/handler"
	"github.com/raywall/item-name-api/pkg/responder"
)

const (
	HeaderCorrelationID = "x-correlation-id"
	ContextKeyCorrID    = contextKey("correlation_id")
)

type contextKey string

// LambdaHandler adapta eventos do API Gateway para os endpoints
type LambdaHandler struct {
	routes  map[string]handler.Handler
	fixed   handler.Handler
	timeout time.Duration
}

type Option func(*LambdaHandler) error

// WithEndpoint fixa a função em um único endpoint, ignorando o path.
func WithEndpoint(name string) Option {
	return func(h *LambdaHandler) error {
		if name == "" {
			return nil
		}
		ep, ok := h.routes[name]
		if !ok {
			return fmt.Errorf("transport: unknown endpoint %q", name)
		}
		h.fixed = ep
		return nil
	}
}

// WithTimeout limita o contexto de cada requisição. Zero mantém o deadline do host.
func WithTimeout(d time.Duration) Option {
	return func(h *LambdaHandler) error {
		h.timeout = d
		return nil
	}
}

// NewLambdaHandler cria uma nova instância do adaptador
func NewLambdaHandler(endpoints []handler.Handler, opts ...Option) (*LambdaHandler, error) {
	h := &LambdaHandler{routes: make(map[string]handler.Handler, len(endpoints))}
	for _, ep := range endpoints {
		h.routes[ep.Name()] = ep
	}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Handle processa a requisição Lambda. O erro é sempre nil: falhas viram
// respostas HTTP.
func (h *LambdaHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	start := time.Now()

	corrID := headerValue(req.Headers, HeaderCorrelationID)
	if corrID == "" {
		corrID = uuid.NewString()
	}

	logger := log.With().Str("correlation_id", corrID).Logger()
	ctx = logger.WithContext(ctx)
	ctx = context.WithValue(ctx, ContextKeyCorrID, corrID)

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	route := h.route(req)
	var response events.APIGatewayProxyResponse
	if ep, ok := h.resolve(route); ok {
		response = ep.Serve(ctx, req)
	} else {
		response = responder.NotFound(fmt.Sprintf("route %q not found", route))
	}

	logger.Info().
		Str("method", req.HTTPMethod).
		Str("path", req.Path).
		Str("route", route).
		Int("status", response.StatusCode).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Msg("lambda request completed")

	if response.Headers == nil {
		response.Headers = make(map[string]string)
	}
	response.Headers[HeaderCorrelationID] = corrID

	return response, nil
}

// route usa o último segmento do path (/prod/list -> list), com fallback
// para o resource configurado no API Gateway.
func (h *LambdaHandler) route(req events.APIGatewayProxyRequest) string {
	if h.fixed != nil {
		return h.fixed.Name()
	}
	p := req.Path
	if p == "" {
		p = req.Resource
	}
	return path.Base(strings.TrimRight(p, "/"))
}

func (h *LambdaHandler) resolve(route string) (handler.Handler, bool) {
	if h.fixed != nil {
		return h.fixed, true
	}
	ep, ok := h.routes[route]
	return ep, ok
}

// headerValue busca sem diferenciar caixa; o API Gateway pode normalizar os nomes.
func headerValue(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
