package emulator

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"math/big"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"gopkg.in/yaml.v3"
)

// Defaults para datasets sem cabeçalho.
const (
	DefaultTable   = "items"
	DefaultHashKey = "ID"
)

// Dataset é o conteúdo de um arquivo de fixture já convertido em atributos.
type Dataset struct {
	Table   string
	HashKey string
	Items   []map[string]types.AttributeValue
}

// LoadFile lê e interpreta um arquivo YAML ou JSON.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("emulator: erro ao ler arquivo: %w", err)
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("emulator: %s: %w", path, err)
	}
	return ds, nil
}

// Parse interpreta o dataset. JSON é aceito por ser subconjunto de YAML.
func Parse(data []byte) (*Dataset, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("erro ao parsear dataset: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, errors.New("dataset vazio")
	}

	ds := &Dataset{Table: DefaultTable, HashKey: DefaultHashKey}
	doc := root.Content[0]

	var itemsNode *yaml.Node
	switch doc.Kind {
	case yaml.SequenceNode:
		itemsNode = doc
	case yaml.MappingNode:
		for i := 0; i+1 < len(doc.Content); i += 2 {
			key, val := doc.Content[i].Value, doc.Content[i+1]
			switch key {
			case "table":
				ds.Table = val.Value
			case "hash_key":
				ds.HashKey = val.Value
			case "items":
				itemsNode = val
			default:
				return nil, fmt.Errorf("campo desconhecido %q (linha %d)", key, doc.Content[i].Line)
			}
		}
	default:
		return nil, fmt.Errorf("dataset deve ser uma lista ou um mapa (linha %d)", doc.Line)
	}

	if itemsNode == nil {
		return ds, nil
	}
	if itemsNode.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("items deve ser uma lista (linha %d)", itemsNode.Line)
	}

	for _, n := range itemsNode.Content {
		av, err := toAttributeValue(n)
		if err != nil {
			return nil, err
		}
		m, ok := av.(*types.AttributeValueMemberM)
		if !ok {
			return nil, fmt.Errorf("item deve ser um mapa (linha %d)", n.Line)
		}
		ds.Items = append(ds.Items, m.Value)
	}
	return ds, nil
}

func toAttributeValue(n *yaml.Node) (types.AttributeValue, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return toAttributeValue(n.Alias)

	case yaml.MappingNode:
		m := make(map[string]types.AttributeValue, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := toAttributeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[n.Content[i].Value] = v
		}
		return &types.AttributeValueMemberM{Value: m}, nil

	case yaml.SequenceNode:
		l := make([]types.AttributeValue, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := toAttributeValue(c)
			if err != nil {
				return nil, err
			}
			l = append(l, v)
		}
		return &types.AttributeValueMemberL{Value: l}, nil

	case yaml.ScalarNode:
		return scalar(n)
	}
	return nil, fmt.Errorf("nó yaml não suportado (linha %d)", n.Line)
}

func scalar(n *yaml.Node) (types.AttributeValue, error) {
	switch n.ShortTag() {
	case "!!null":
		return &types.AttributeValueMemberNULL{Value: true}, nil

	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return &types.AttributeValueMemberBOOL{Value: b}, nil

	case "!!int", "!!float":
		// mantém o texto original quando ele já é um decimal válido
		if _, ok := new(big.Rat).SetString(n.Value); ok {
			return &types.AttributeValueMemberN{Value: n.Value}, nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, fmt.Errorf("número sem representação no DynamoDB (linha %d): %s", n.Line, n.Value)
		}
		return &types.AttributeValueMemberN{Value: strconv.FormatFloat(f, 'f', -1, 64)}, nil

	case "!!binary":
		b, err := base64.StdEncoding.DecodeString(n.Value)
		if err != nil {
			return nil, fmt.Errorf("binário inválido (linha %d): %w", n.Line, err)
		}
		return &types.AttributeValueMemberB{Value: b}, nil
	}
	return &types.AttributeValueMemberS{Value: n.Value}, nil
}
