package injector

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/raywall/item-name-api/pkg/awsclient"
)

// Regex para capturar padrões ${tipo.chave}
// Ex: ${env.TABLE_NAME}, ${ssm./item-api/table}
var pattern = regexp.MustCompile(`\$\{(env|ssm)\.([^}]+)\}`)

// ErrNoParameterStore: placeholder ${ssm.*} sem client SSM configurado
var ErrNoParameterStore = errors.New("injector: ssm placeholder requires a parameter client")

type Injector struct {
	params awsclient.ParameterClient
}

// New cria o injector. params pode ser nil quando só ${env.*} é usado.
func New(params awsclient.ParameterClient) *Injector {
	return &Injector{params: params}
}

// Inject percorre a struct (e ponteiros, slices e mapas de string) trocando
// placeholders pelo valor resolvido.
func (i *Injector) Inject(ctx context.Context, target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("injector: target deve ser um ponteiro para struct não nulo")
	}
	return i.injectRecursive(ctx, v.Elem())
}

// Parameter resolve um caminho do Parameter Store.
func (i *Injector) Parameter(ctx context.Context, path string) (string, error) {
	if i.params == nil {
		return "", ErrNoParameterStore
	}
	return awsclient.GetParameter(ctx, i.params, path)
}

func (i *Injector) injectRecursive(ctx context.Context, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Struct:
		for k := 0; k < v.NumField(); k++ {
			if err := i.injectRecursive(ctx, v.Field(k)); err != nil {
				return fmt.Errorf("%s: %w", v.Type().Field(k).Name, err)
			}
		}

	case reflect.String:
		if !v.CanSet() {
			return nil
		}
		newValue, err := i.interpolateString(ctx, v.String())
		if err != nil {
			return err
		}
		v.SetString(newValue)

	case reflect.Ptr:
		if !v.IsNil() {
			return i.injectRecursive(ctx, v.Elem())
		}

	case reflect.Slice:
		for j := 0; j < v.Len(); j++ {
			if err := i.injectRecursive(ctx, v.Index(j)); err != nil {
				return err
			}
		}

	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String && v.Type().Elem().Kind() == reflect.String && !v.IsNil() {
			return i.injectMap(ctx, v)
		}
	}
	return nil
}

// interpolateString realiza a substituição baseada em Regex
func (i *Injector) interpolateString(ctx context.Context, input string) (string, error) {
	if !strings.Contains(input, "${") {
		return input, nil
	}

	var err error
	result := pattern.ReplaceAllStringFunc(input, func(match string) string {
		if err != nil {
			return match
		}
		groups := pattern.FindStringSubmatch(match)

		val, resolveErr := i.fetchValue(ctx, groups[1], groups[2])
		if resolveErr != nil {
			err = resolveErr
			return match
		}
		return val
	})

	return result, err
}

func (i *Injector) injectMap(ctx context.Context, v reflect.Value) error {
	iter := v.MapRange()
	updates := make(map[string]string)

	for iter.Next() {
		newVal, err := i.interpolateString(ctx, iter.Value().String())
		if err != nil {
			return err
		}
		updates[iter.Key().String()] = newVal
	}

	for k, val := range updates {
		v.SetMapIndex(reflect.ValueOf(k).Convert(v.Type().Key()), reflect.ValueOf(val).Convert(v.Type().Elem()))
	}
	return nil
}

// fetchValue centraliza a busca de dados
func (i *Injector) fetchValue(ctx context.Context, sourceType, key string) (string, error) {
	switch sourceType {
	case "env":
		// variável não encontrada resolve para vazio
		return os.Getenv(key), nil
	case "ssm":
		return i.Parameter(ctx, key)
	}
	return "", fmt.Errorf("injector: unknown source %q", sourceType)
}
