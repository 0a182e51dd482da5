package emulator

import (
	"context"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

// maxBatchKeys é o limite do BatchGetItem no DynamoDB.
const maxBatchKeys = 100

// Options controla a paginação simulada.
type Options struct {
	// PageSize limita os itens avaliados por página de Scan (0 = sem limite).
	PageSize int
	// BatchLimit limita as chaves processadas por BatchGetItem; o restante
	// volta em UnprocessedKeys (0 = processa todas).
	BatchLimit int
}

// Stats conta as chamadas recebidas.
type Stats struct {
	BatchGetItemCalls int
	ScanCalls         int
}

// Client é um DynamoDB em memória, somente leitura, seguro para uso concorrente.
type Client struct {
	table   string
	hashKey string
	items   []map[string]types.AttributeValue
	index   map[string]int
	opts    Options

	mu    sync.Mutex
	stats Stats
}

// New indexa o dataset pela hash key. Itens sem a chave ou com chave repetida
// são rejeitados.
func New(ds *Dataset, opts Options) (*Client, error) {
	c := &Client{
		table:   ds.Table,
		hashKey: ds.HashKey,
		items:   ds.Items,
		index:   make(map[string]int, len(ds.Items)),
		opts:    opts,
	}
	if c.table == "" {
		c.table = DefaultTable
	}
	if c.hashKey == "" {
		c.hashKey = DefaultHashKey
	}

	for i, item := range c.items {
		k, err := keyString(item[c.hashKey])
		if err != nil {
			return nil, fmt.Errorf("emulator: item %d: %w", i, err)
		}
		if _, dup := c.index[k]; dup {
			return nil, fmt.Errorf("emulator: item %d: chave %s duplicada", i, k)
		}
		c.index[k] = i
	}
	return c, nil
}

func (c *Client) Table() string   { return c.table }
func (c *Client) HashKey() string { return c.hashKey }

func (c *Client) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *Client) BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.count(func(s *Stats) { s.BatchGetItemCalls++ })

	out := &dynamodb.BatchGetItemOutput{
		Responses:       map[string][]map[string]types.AttributeValue{},
		UnprocessedKeys: map[string]types.KeysAndAttributes{},
	}

	total := 0
	for table, req := range params.RequestItems {
		if table != c.table {
			return nil, resourceNotFound(table)
		}
		total += len(req.Keys)
	}
	if total > maxBatchKeys {
		return nil, validation(fmt.Sprintf("Too many items requested for the BatchGetItem call: %d", total))
	}

	for table, req := range params.RequestItems {
		keys := req.Keys
		seen := make(map[string]struct{}, len(keys))
		for _, key := range keys {
			k, err := keyString(key[c.hashKey])
			if err != nil {
				return nil, validation("The provided key element does not match the schema")
			}
			if _, dup := seen[k]; dup {
				return nil, validation("Provided list of item keys contains duplicates")
			}
			seen[k] = struct{}{}
		}

		if c.opts.BatchLimit > 0 && len(keys) > c.opts.BatchLimit {
			rest := req
			rest.Keys = keys[c.opts.BatchLimit:]
			out.UnprocessedKeys[table] = rest
			keys = keys[:c.opts.BatchLimit]
		}

		found := make([]map[string]types.AttributeValue, 0, len(keys))
		for _, key := range keys {
			k, _ := keyString(key[c.hashKey])
			if i, ok := c.index[k]; ok {
				found = append(found, project(c.items[i], req.ProjectionExpression, req.ExpressionAttributeNames))
			}
		}
		out.Responses[table] = found
	}

	return out, nil
}

func (c *Client) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.count(func(s *Stats) { s.ScanCalls++ })

	if table := aws.ToString(params.TableName); table != c.table {
		return nil, resourceNotFound(table)
	}

	filter, err := parseFilter(aws.ToString(params.FilterExpression), params.ExpressionAttributeNames, params.ExpressionAttributeValues)
	if err != nil {
		return nil, err
	}

	start := 0
	if len(params.ExclusiveStartKey) > 0 {
		k, err := keyString(params.ExclusiveStartKey[c.hashKey])
		if err != nil {
			return nil, validation("The provided starting key is invalid")
		}
		i, ok := c.index[k]
		if !ok {
			return nil, validation("The provided starting key is invalid")
		}
		start = i + 1
	}

	pageSize := c.opts.PageSize
	if params.Limit != nil && (pageSize == 0 || int(*params.Limit) < pageSize) {
		pageSize = int(*params.Limit)
	}

	end := len(c.items)
	if pageSize > 0 && start+pageSize < end {
		end = start + pageSize
	}

	out := &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{}}
	for _, item := range c.items[start:end] {
		out.ScannedCount++
		if filter.match(item) {
			out.Items = append(out.Items, project(item, params.ProjectionExpression, params.ExpressionAttributeNames))
		}
	}
	out.Count = int32(len(out.Items))

	if end < len(c.items) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{c.hashKey: c.items[end-1][c.hashKey]}
	}
	return out, nil
}

func (c *Client) count(fn func(*Stats)) {
	c.mu.Lock()
	fn(&c.stats)
	c.mu.Unlock()
}

// --- filtros ---

var (
	containsRe = regexp.MustCompile(`^contains \((#\w+), (:\w+)\)$`)
	equalRe    = regexp.MustCompile(`^(#\w+) = (:\w+)$`)
)

type clause struct {
	contains bool
	name     string
	value    types.AttributeValue
}

type filter []clause

func (f filter) match(item map[string]types.AttributeValue) bool {
	for _, c := range f {
		attr, ok := item[c.name]
		if !ok {
			return false
		}
		if c.contains && !contains(attr, c.value) {
			return false
		}
		if !c.contains && !equal(attr, c.value) {
			return false
		}
	}
	return true
}

// parseFilter entende as formas geradas pelo pacote expression:
// "contains (#0, :0)", "#0 = :0" e conjunções "(a) AND (b)".
func parseFilter(expr string, names map[string]string, values map[string]types.AttributeValue) (filter, error) {
	if expr == "" {
		return nil, nil
	}

	var f filter
	for _, part := range splitAnd(expr) {
		var m []string
		var isContains bool
		if m = containsRe.FindStringSubmatch(part); m != nil {
			isContains = true
		} else if m = equalRe.FindStringSubmatch(part); m == nil {
			return nil, validation(fmt.Sprintf("Unsupported FilterExpression: %s", part))
		}

		name, ok := names[m[1]]
		if !ok {
			return nil, validation(fmt.Sprintf("Value provided in ExpressionAttributeNames unused in expressions: %s", m[1]))
		}
		value, ok := values[m[2]]
		if !ok {
			return nil, validation(fmt.Sprintf("An expression attribute value used in expression is not defined: %s", m[2]))
		}
		f = append(f, clause{contains: isContains, name: name, value: value})
	}
	return f, nil
}

// splitAnd separa conjunções no nível zero de parênteses, removendo
// parênteses externos de cada termo.
func splitAnd(expr string) []string {
	expr = strings.TrimSpace(expr)
	if wrapped(expr) {
		return splitAnd(expr[1 : len(expr)-1])
	}

	var parts []string
	depth, last := 0, 0
	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ' ':
			if depth == 0 && strings.HasPrefix(expr[i:], " AND ") {
				parts = append(parts, expr[last:i])
				last = i + len(" AND ")
				i = last - 1
			}
		}
	}
	parts = append(parts, expr[last:])

	if len(parts) == 1 {
		return parts
	}
	var out []string
	for _, p := range parts {
		out = append(out, splitAnd(p)...)
	}
	return out
}

// wrapped indica se o primeiro parêntese fecha no último caractere.
func wrapped(s string) bool {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i < len(s)-1 {
				return false
			}
		}
	}
	return true
}

func contains(attr, operand types.AttributeValue) bool {
	switch a := attr.(type) {
	case *types.AttributeValueMemberS:
		if s, ok := operand.(*types.AttributeValueMemberS); ok {
			return strings.Contains(a.Value, s.Value)
		}
	case *types.AttributeValueMemberSS:
		if s, ok := operand.(*types.AttributeValueMemberS); ok {
			for _, v := range a.Value {
				if v == s.Value {
					return true
				}
			}
		}
	case *types.AttributeValueMemberNS:
		for _, v := range a.Value {
			if equal(&types.AttributeValueMemberN{Value: v}, operand) {
				return true
			}
		}
	case *types.AttributeValueMemberL:
		for _, v := range a.Value {
			if equal(v, operand) {
				return true
			}
		}
	}
	return false
}

func equal(a, b types.AttributeValue) bool {
	ka, errA := keyString(a)
	kb, errB := keyString(b)
	if errA == nil && errB == nil {
		return ka == kb
	}
	switch x := a.(type) {
	case *types.AttributeValueMemberBOOL:
		y, ok := b.(*types.AttributeValueMemberBOOL)
		return ok && x.Value == y.Value
	case *types.AttributeValueMemberNULL:
		_, ok := b.(*types.AttributeValueMemberNULL)
		return ok
	}
	return false
}

// keyString normaliza S, N e B para comparação; números comparam pelo
// valor decimal (1.0 == 1).
func keyString(av types.AttributeValue) (string, error) {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return "S:" + v.Value, nil
	case *types.AttributeValueMemberN:
		r, ok := new(big.Rat).SetString(v.Value)
		if !ok {
			return "", fmt.Errorf("número inválido %q", v.Value)
		}
		return "N:" + r.RatString(), nil
	case *types.AttributeValueMemberB:
		return "B:" + string(v.Value), nil
	case nil:
		return "", fmt.Errorf("chave ausente")
	}
	return "", fmt.Errorf("tipo de chave não suportado %T", av)
}

// project aplica ProjectionExpression ("#0, #1") ao item.
func project(item map[string]types.AttributeValue, expr *string, names map[string]string) map[string]types.AttributeValue {
	if aws.ToString(expr) == "" {
		return item
	}
	out := make(map[string]types.AttributeValue)
	for _, p := range strings.Split(*expr, ",") {
		p = strings.TrimSpace(p)
		if n, ok := names[p]; ok {
			p = n
		}
		if v, ok := item[p]; ok {
			out[p] = v
		}
	}
	return out
}

func resourceNotFound(table string) error {
	return &types.ResourceNotFoundException{Message: aws.String("Requested resource not found: Table: " + table + " not found")}
}

func validation(msg string) error {
	return &smithy.GenericAPIError{Code: "ValidationException", Message: msg, Fault: smithy.FaultClient}
}
