// dyndb/token.go
package dyndb

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// tokenAttr é a forma serializável de um atributo de chave (S, N ou B).
type tokenAttr struct {
	S *string `json:"S,omitempty"`
	N *string `json:"N,omitempty"`
	B []byte  `json:"B,omitempty"`
}

// EncodeToken converte um LastEvaluatedKey em token Base64. Chave vazia vira "".
func EncodeToken(key map[string]types.AttributeValue) (string, error) {
	if len(key) == 0 {
		return "", nil
	}

	wire := make(map[string]tokenAttr, len(key))
	for name, av := range key {
		switch v := av.(type) {
		case *types.AttributeValueMemberS:
			wire[name] = tokenAttr{S: &v.Value}
		case *types.AttributeValueMemberN:
			wire[name] = tokenAttr{N: &v.Value}
		case *types.AttributeValueMemberB:
			wire[name] = tokenAttr{B: v.Value}
		default:
			return "", fmt.Errorf("dyndb: unsupported key attribute %q (%T)", name, av)
		}
	}

	b, err := json.Marshal(wire)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// DecodeToken é o inverso de EncodeToken.
func DecodeToken(token string) (map[string]types.AttributeValue, error) {
	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	var wire map[string]tokenAttr
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	key := make(map[string]types.AttributeValue, len(wire))
	for name, attr := range wire {
		switch {
		case attr.S != nil:
			key[name] = &types.AttributeValueMemberS{Value: *attr.S}
		case attr.N != nil:
			key[name] = &types.AttributeValueMemberN{Value: *attr.N}
		case attr.B != nil:
			key[name] = &types.AttributeValueMemberB{Value: attr.B}
		default:
			return nil, fmt.Errorf("%w: empty attribute %q", ErrInvalidToken, name)
		}
	}
	return key, nil
}
