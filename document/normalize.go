package document

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

// Normalize converte um valor decodificado em algo que encoding/json sabe
// serializar:
//   - decimais inteiros viram inteiros (sem limite de tamanho), os demais float64
//   - binários viram string
//   - valores sem representação JSON caem para a conversão em string e,
//     se ela falhar, para null
func Normalize(v any) any {
	switch x := v.(type) {
	case nil, string, bool, json.Number:
		return x
	case attributevalue.Number:
		return normalizeDecimal(string(x))
	case float64:
		return normalizeFloat(x)
	case float32:
		return normalizeFloat(float64(x))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return x
	case []byte:
		return string(x)
	case Document:
		return normalizeMap(x)
	case map[string]any:
		return normalizeMap(x)
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = Normalize(item)
		}
		return out
	case []string:
		return x
	case []attributevalue.Number:
		out := make([]any, len(x))
		for i, n := range x {
			out[i] = normalizeDecimal(string(n))
		}
		return out
	case []float64:
		out := make([]any, len(x))
		for i, f := range x {
			out[i] = normalizeFloat(f)
		}
		return out
	case [][]byte:
		out := make([]string, len(x))
		for i, b := range x {
			out[i] = string(b)
		}
		return out
	case fmt.Stringer:
		return stringify(x)
	default:
		if _, err := json.Marshal(x); err == nil {
			return x
		}
		return stringify(x)
	}
}

func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Normalize(v)
	}
	return out
}

// normalizeDecimal reproduz a regra "int quando exato, float caso contrário".
// Texto que não é decimal válido é devolvido como string.
func normalizeDecimal(s string) any {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return s
	}
	if r.IsInt() {
		return json.Number(r.Num().String())
	}
	f, _ := r.Float64()
	return normalizeFloat(f)
}

func normalizeFloat(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return int64(f)
	}
	return f
}

// stringify converte para string; um String() que entra em pânico vira null.
func stringify(v any) (out any) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
		}
	}()
	if s, ok := v.(fmt.Stringer); ok {
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil
		}
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}
