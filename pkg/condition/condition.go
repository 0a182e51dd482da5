// Package condition interpreta os parâmetros de query string das rotas list
// e search, produzindo a condição tipada que é ecoada na resposta.
package condition

import (
	"fmt"
	"strconv"
	"strings"
)

// Nomes dos parâmetros aceitos.
const (
	ParamIDs      = "ids"
	ParamLanguage = "language"
	ParamString   = "string"
)

// RequestError indica um parâmetro de entrada inválido. A mensagem é segura
// para ser devolvida ao cliente.
type RequestError struct {
	Param   string
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("condition: invalid %s: %s", e.Param, e.Message)
}

// ClientMessage devolve o texto exposto no corpo do 400.
func (e *RequestError) ClientMessage() string {
	return e.Message
}

func invalid(param, msg string) error {
	return &RequestError{Param: param, Message: msg}
}

// ListCondition é a condição da rota list. IDs preserva ordem e duplicatas
// exatamente como recebidos.
type ListCondition struct {
	IDs []int64 `json:"ids"`
}

// UniqueIDs devolve os ids sem repetição, na ordem da primeira ocorrência.
func (c ListCondition) UniqueIDs() []int64 {
	seen := make(map[int64]struct{}, len(c.IDs))
	out := make([]int64, 0, len(c.IDs))
	for _, id := range c.IDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// SearchCondition é a condição da rota search.
type SearchCondition struct {
	Language Language `json:"language"`
	String   string   `json:"string"`
}

// ParseList valida o parâmetro ids ("1,2,3").
func ParseList(query map[string]string) (ListCondition, error) {
	raw, ok := query[ParamIDs]
	if !ok || raw == "" {
		return ListCondition{}, invalid(ParamIDs, "ids is required.")
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return ListCondition{}, invalid(ParamIDs, "ids must be comma separated numbers")
		}
		ids = append(ids, id)
	}

	return ListCondition{IDs: ids}, nil
}

// ParseSearch valida language e string. O primeiro campo inválido encerra a
// validação.
func ParseSearch(query map[string]string) (SearchCondition, error) {
	rawLang := query[ParamLanguage]
	if rawLang == "" {
		return SearchCondition{}, invalid(ParamLanguage, "language is required.")
	}
	lang, err := ParseLanguage(rawLang)
	if err != nil {
		return SearchCondition{}, err
	}

	s := query[ParamString]
	if s == "" {
		return SearchCondition{}, invalid(ParamString, "string is required.")
	}

	return SearchCondition{Language: lang, String: s}, nil
}
