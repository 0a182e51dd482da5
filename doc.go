// Package itemnameapi expõe duas rotas de leitura sobre a tabela de itens do
// jogo no DynamoDB.
//
// Visão Geral:
//
//	GET /list?ids=1,2,3             BatchGetItem em lotes de 100, drenando UnprocessedKeys
//	GET /search?language=en&string= Scan com contains(Name_<idioma>, string), seguindo LastEvaluatedKey
//
// As duas rotas ordenam os resultados por ItemSearchCategory.ID e respondem
// {"Condition": ..., "Results": [...]}. Erros de parâmetro viram 400
// {"message": ...}; qualquer outra falha vira 500 {"type":"InternalServerError"}.
//
// Sub-Pacotes Principais:
//
//   - pkg/condition: parse e validação da query string.
//   - dyndb: BatchGet e ScanBuilder sobre o SDK v2.
//   - document: itens como mapas, com decimais exatos e ordenação por categoria.
//   - pkg/handler, pkg/responder: pipeline parse → busca → envelope.
//   - pkg/transport: Lambda (API Gateway proxy) e servidor local gorilla/mux.
//   - pkg/config, envloader: configuração por variáveis de ambiente.
//   - tools/emulator: DynamoDB em memória a partir de um dataset YAML/JSON.
//
// Execução local com dataset:
//
//	SERVICE_RUNTIME=local FIXTURE_FILE=tools/emulator/testdata/items.yaml go run ./cmd/server
//	curl 'localhost:8080/search?language=en&string=Potion'
package itemnameapi
