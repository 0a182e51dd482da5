// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package document representa os itens retornados pelo DynamoDB como mapas
// opacos, preservando números como decimais exatos até a serialização JSON.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// CategoryAttribute e CategoryIDAttribute formam o caminho da chave de ordenação.
const (
	CategoryAttribute   = "ItemSearchCategory"
	CategoryIDAttribute = "ID"
)

// Document é um item do DynamoDB decodificado. Campos não conhecidos passam
// sem alteração até a resposta.
type Document map[string]any

// FromAttributes decodifica um item do DynamoDB mantendo os números como
// attributevalue.Number (texto decimal de precisão arbitrária).
func FromAttributes(item map[string]types.AttributeValue) (Document, error) {
	doc := Document{}
	err := attributevalue.UnmarshalMapWithOptions(item, (*map[string]any)(&doc), func(o *attributevalue.DecoderOptions) {
		o.UseNumber = true
	})
	if err != nil {
		return nil, fmt.Errorf("document: unmarshal failed: %w", err)
	}
	return doc, nil
}

// FromAttributeList decodifica uma página de itens.
func FromAttributeList(items []map[string]types.AttributeValue) ([]Document, error) {
	docs := make([]Document, 0, len(items))
	for _, item := range items {
		doc, err := FromAttributes(item)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Lookup percorre mapas aninhados seguindo o caminho informado.
func (d Document) Lookup(path ...string) (any, bool) {
	var current any = map[string]any(d)
	for _, key := range path {
		m, ok := asMap(current)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// MarshalJSON aplica Normalize antes de serializar. Caracteres HTML e não-ASCII
// são mantidos literais.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Normalize(map[string]any(d))); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Document:
		return m, true
	default:
		return nil, false
	}
}
