package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/item-name-api/pkg/handler"
	"github.com/raywall/item-name-api/pkg/responder"
)

// echoEndpoint devolve a query recebida como condição
type echoEndpoint struct{ name string }

func (e echoEndpoint) Name() string { return e.name }

func (e echoEndpoint) Serve(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	return responder.Success(ctx, req.QueryStringParameters, nil)
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	h, err := NewLambdaHandler([]handler.Handler{echoEndpoint{"list"}, echoEndpoint{"search"}})
	require.NoError(t, err)
	srv := httptest.NewServer(NewRouter(h))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestRouter_ForwardsQuery(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/search?language=en&string=Potion&string=Ether")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, resp.Header.Get(HeaderCorrelationID))
	assert.JSONEq(t, `{"Condition":{"language":"en","string":"Ether"},"Results":[]}`, body)
}

func TestRouter_UnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv.URL+"/detail")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"message":"route \"detail\" not found"}`, body)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/list", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestToProxyRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/list?ids=1,2", nil)
	req.Header.Set("X-Correlation-Id", "corr")

	event, err := toProxyRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "GET", event.HTTPMethod)
	assert.Equal(t, "/list", event.Path)
	assert.Equal(t, "1,2", event.QueryStringParameters["ids"])
	assert.Equal(t, "corr", event.Headers["X-Correlation-Id"])
}

func TestStartHTTPServer_StopsOnCancel(t *testing.T) {
	h, err := NewLambdaHandler(nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, StartHTTPServer(ctx, 0, h))
}
