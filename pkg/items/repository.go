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

// Package items concentra as consultas de leitura sobre a tabela de itens.
package items

import (
	"context"

	"github.com/raywall/item-name-api/document"
	"github.com/raywall/item-name-api/dyndb"
	"github.com/raywall/item-name-api/pkg/condition"
)

type Repository struct {
	store dyndb.Store
}

func NewRepository(store dyndb.Store) *Repository {
	return &Repository{store: store}
}

// FindByIDs: batch por hash key, sem sort key. Ids repetidos são buscados
// uma única vez.
func (r *Repository) FindByIDs(ctx context.Context, cond condition.ListCondition) ([]document.Document, error) {
	ids := cond.UniqueIDs()
	keys := make([][2]any, len(ids))
	for i, id := range ids {
		keys[i] = [2]any{id, nil}
	}
	return r.store.BatchGet(ctx, keys)
}

// SearchByName: scan com contains(Name_<idioma>, termo), seguindo todas as páginas
func (r *Repository) SearchByName(ctx context.Context, cond condition.SearchCondition) ([]document.Document, error) {
	return r.store.Scan().
		FilterContains(cond.Language.Field(), cond.String).
		All(ctx)
}
