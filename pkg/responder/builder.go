package responder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/raywall/item-name-api/document"
)

const (
	HeaderContentType = "Content-Type"
	HeaderAllowOrigin = "Access-Control-Allow-Origin"
)

// internalServerErrorBody é o único corpo de 500; a causa nunca é exposta.
const internalServerErrorBody = `{"type":"InternalServerError"}`

// ClientError é satisfeito por erros cuja mensagem pode ir para o cliente
// (ex: *condition.RequestError).
type ClientError interface {
	error
	ClientMessage() string
}

// Envelope é o corpo de sucesso.
type Envelope struct {
	Condition any                 `json:"Condition"`
	Results   []document.Document `json:"Results"`
}

type messageBody struct {
	Message string `json:"message"`
}

// Headers devolve um mapa novo com os headers fixos da API.
func Headers() map[string]string {
	return map[string]string{
		HeaderContentType: "application/json",
		HeaderAllowOrigin: "*",
	}
}

// Success monta o 200 com a condição ecoada e os resultados. Resultados nil
// viram [] no JSON.
func Success(ctx context.Context, cond any, results []document.Document) events.APIGatewayProxyResponse {
	if results == nil {
		results = []document.Document{}
	}

	body, err := encode(Envelope{Condition: cond, Results: results})
	if err != nil {
		return FromError(ctx, err)
	}
	return build(http.StatusOK, body)
}

// BadRequest monta o 400 com a mensagem informada.
func BadRequest(msg string) events.APIGatewayProxyResponse {
	return message(http.StatusBadRequest, msg)
}

// NotFound é usado pelo transporte para rotas desconhecidas.
func NotFound(msg string) events.APIGatewayProxyResponse {
	return message(http.StatusNotFound, msg)
}

func InternalServerError() events.APIGatewayProxyResponse {
	return build(http.StatusInternalServerError, internalServerErrorBody)
}

// FromError classifica o erro: ClientError vira 400; qualquer outro é
// registrado no log do contexto e vira 500.
func FromError(ctx context.Context, err error) events.APIGatewayProxyResponse {
	var clientErr ClientError
	if errors.As(err, &clientErr) {
		return BadRequest(clientErr.ClientMessage())
	}

	log.Ctx(ctx).Error().Err(err).Msg("request failed")
	return InternalServerError()
}

func message(status int, msg string) events.APIGatewayProxyResponse {
	body, err := encode(messageBody{Message: msg})
	if err != nil {
		return InternalServerError()
	}
	return build(status, body)
}

func build(status int, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    Headers(),
		Body:       body,
	}
}

// encode serializa sem escapar HTML; texto não-ASCII sai literal.
func encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
