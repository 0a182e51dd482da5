package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// shutdownTimeout limita o encerramento gracioso do servidor local.
const shutdownTimeout = 5 * time.Second

// NewRouter expõe GET /{endpoint} convertendo a requisição em evento do API
// Gateway, de modo que o mesmo LambdaHandler atenda localmente.
func NewRouter(h *LambdaHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/{endpoint}", serveProxy(h)).Methods(http.MethodGet)
	r.NotFoundHandler = serveProxy(h)
	return r
}

func serveProxy(h *LambdaHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := toProxyRequest(r)
		if err != nil {
			http.Error(w, `{"message":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		resp, _ := h.Handle(r.Context(), event)

		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = io.WriteString(w, resp.Body)
	}
}

func toProxyRequest(r *http.Request) (events.APIGatewayProxyRequest, error) {
	event := events.APIGatewayProxyRequest{
		HTTPMethod:                      r.Method,
		Path:                            r.URL.Path,
		Resource:                        r.URL.Path,
		Headers:                         map[string]string{},
		MultiValueHeaders:               map[string][]string{},
		QueryStringParameters:           map[string]string{},
		MultiValueQueryStringParameters: map[string][]string{},
		PathParameters:                  mux.Vars(r),
	}

	for k, v := range r.Header {
		if len(v) > 0 {
			event.Headers[k] = v[len(v)-1]
			event.MultiValueHeaders[k] = v
		}
	}

	// o API Gateway mantém o último valor em QueryStringParameters
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			event.QueryStringParameters[k] = v[len(v)-1]
			event.MultiValueQueryStringParameters[k] = v
		}
	}

	if r.Body != nil {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return event, err
		}
		event.Body = string(body)
	}

	return event, nil
}

// StartHTTPServer sobe o servidor local e encerra graciosamente quando o
// contexto é cancelado.
func StartHTTPServer(ctx context.Context, port int, h *LambdaHandler) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("Servidor HTTP ouvindo em %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}
