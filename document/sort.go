package document

import (
	"encoding/json"
	"math"
	"math/big"
	"sort"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

// CategoryID devolve ItemSearchCategory.ID como decimal exato.
// Ausente ou não numérico conta como zero.
func (d Document) CategoryID() *big.Rat {
	v, ok := d.Lookup(CategoryAttribute, CategoryIDAttribute)
	if !ok {
		return new(big.Rat)
	}
	if r, ok := toRat(v); ok {
		return r
	}
	return new(big.Rat)
}

// SortByCategory ordena os documentos em ordem crescente de categoria.
func SortByCategory(docs []Document) {
	keys := make([]*big.Rat, len(docs))
	for i, d := range docs {
		keys[i] = d.CategoryID()
	}
	sort.Stable(byCategory{docs: docs, keys: keys})
}

type byCategory struct {
	docs []Document
	keys []*big.Rat
}

func (b byCategory) Len() int           { return len(b.docs) }
func (b byCategory) Less(i, j int) bool { return b.keys[i].Cmp(b.keys[j]) < 0 }
func (b byCategory) Swap(i, j int) {
	b.docs[i], b.docs[j] = b.docs[j], b.docs[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}

func toRat(v any) (*big.Rat, bool) {
	switch x := v.(type) {
	case attributevalue.Number:
		return new(big.Rat).SetString(string(x))
	case json.Number:
		return new(big.Rat).SetString(string(x))
	case string:
		return new(big.Rat).SetString(x)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, false
		}
		return new(big.Rat).SetFloat64(x), true
	case int:
		return new(big.Rat).SetInt64(int64(x)), true
	case int64:
		return new(big.Rat).SetInt64(x), true
	case int32:
		return new(big.Rat).SetInt64(int64(x)), true
	case uint32:
		return new(big.Rat).SetInt64(int64(x)), true
	default:
		return nil, false
	}
}
