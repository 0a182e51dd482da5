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
// Package emulator fornece um DynamoDB em memória, carregado de um arquivo
// YAML ou JSON, que implementa dyndb.DynamoDBClient.
//
// Visão Geral:
// O emulator permite rodar as rotas list e search localmente (ou em testes de
// integração) sem uma tabela real. Ele reproduz o comportamento de leitura que
// importa para o serviço: BatchGetItem com limite de 100 chaves e
// UnprocessedKeys, e Scan paginado com LastEvaluatedKey e filtros gerados pelo
// pacote expression do SDK.
//
// Funcionalidades Principais:
//   - Dataset exato: números do arquivo viram atributos N com o texto original
//     (5.0 continua 5.0 até a serialização).
//   - Paginação: Options.PageSize limita os itens avaliados por página de Scan.
//   - Processamento parcial: Options.BatchLimit devolve o excedente de cada
//     BatchGetItem em UnprocessedKeys.
//   - Erros do DynamoDB: tabela desconhecida, chaves duplicadas e lotes acima
//     de 100 chaves falham como no serviço real.
//
// Estrutura do Arquivo:
//
//	table: items
//	hash_key: ID
//	items:
//	  - ID: 1
//	    Name_en: Potion
//	    ItemSearchCategory:
//	      ID: 4.0
//
// Uma lista simples de itens também é aceita; nesse caso a tabela se chama
// "items" e a hash key "ID".
//
// Exemplo de Inicialização Programática (Go):
//
//	ds, err := emulator.LoadFile("testdata/items.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	client, err := emulator.New(ds, emulator.Options{PageSize: 25})
//	if err != nil {
//		log.Fatal(err)
//	}
//	store := dyndb.New(client, dyndb.TableConfig{TableName: client.Table(), HashKey: client.HashKey()})
package emulator
