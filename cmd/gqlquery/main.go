// gqlquery ejecuta consultas GraphQL contra el almacén en memoria, sin levantar el servidor.
//
// Uso:
//
//	go run ./cmd/gqlquery run --query '{ companies { id name } }'
//	go run ./cmd/gqlquery run --seed ./seed.yaml --query 'query($id: ID!) { clients(companyId: $id) { name } }' --vars '{"id":"1"}'
//	go run ./cmd/gqlquery schema
package main

import (
	"os"

	"github.com/jhoicas/facturas-graph/pkg/logger"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		logger.New(logger.Config{Env: "development", Level: "error", Output: os.Stderr}).
			Error().Err(err).Msg("gqlquery")
		os.Exit(1)
	}
}
