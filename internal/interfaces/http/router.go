package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/facturas-graph/internal/application/dto"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	GraphQL     *GraphQLHandler
	Metrics     nethttp.Handler // nil = /metrics deshabilitado
	ServiceName string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.ServiceName})
	})

	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	// GraphQL (público; la autorización queda fuera de alcance)
	gql := app.Group("/graphql")
	gql.Post("/", deps.GraphQL.Post)
	gql.Get("/", deps.GraphQL.Get)
	gql.Get("/schema", deps.GraphQL.Schema)
}
