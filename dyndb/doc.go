// Package dyndb fornece uma camada de leitura sobre o AWS DynamoDB Go SDK (v2)
// para tabelas de documentos opacos.
//
// Visão Geral:
// O pacote expõe a interface `Store`, que cobre as duas primitivas que os
// endpoints de consulta precisam: `BatchGet` por chaves explícitas e `Scan`
// filtrado. Ambas devolvem `document.Document`, mantendo os números do
// DynamoDB como decimais exatos.
//
// Funcionalidades Principais:
//   - BatchGet: divide as chaves em lotes de até 100 (limite do BatchGetItem) e
//     reenvia `UnprocessedKeys` até esvaziar, sempre de forma sequencial.
//   - Scan fluente: `Scan().FilterContains(...).All(ctx)` segue o
//     `LastEvaluatedKey` até o fim da tabela; `Exec` devolve uma única página e
//     um token Base64 para continuação manual.
//   - MockDynamoClient com campos de função para testes unitários.
//
// Exemplo de Uso:
//
//	cfg := dyndb.TableConfig{TableName: "Items", HashKey: "ID"}
//	store := dyndb.New(client, cfg)
//
//	docs, err := store.BatchGet(ctx, [][2]any{{1, nil}, {2, nil}})
//
//	matches, err := store.Scan().
//		FilterContains("Name_en", "Potion").
//		All(ctx)
package dyndb
