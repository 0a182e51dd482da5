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
//
// Package envloader carrega variáveis de ambiente diretamente para campos de
// uma struct Go usando as tags `env`, `envDefault` e `envRequired`.
//
// Suporta string, int, uint, bool, float e time.Duration, além de structs
// aninhadas (incluindo ponteiros para structs, que são alocados quando nil).
// Quando a variável não existe e não há default, o valor atual do campo é
// mantido; isso permite pré-preencher a struct antes de chamar Load.
//
// Exemplo:
//
//	type TableConfig struct {
//		TableName string        `env:"TABLE_NAME" envRequired:"true"`
//		HashKey   string        `env:"TABLE_HASH_KEY" envDefault:"ID"`
//		Timeout   time.Duration `env:"SERVICE_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg TableConfig
//	if err := envloader.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Erros de conversão são devolvidos como *FieldError, que encapsula a causa
// original (use errors.As ou errors.Is para inspecioná-la).
package envloader
