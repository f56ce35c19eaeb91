package http

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/jhoicas/facturas-graph/internal/application/dto"
	"github.com/jhoicas/facturas-graph/internal/application/graph"
	"github.com/jhoicas/facturas-graph/internal/interfaces/graphql"
)

// GraphQLHandler expone el motor de resolución sobre HTTP.
type GraphQLHandler struct {
	parser   *graphql.Parser
	engine   *graph.Engine
	validate *validator.Validate
	log      zerolog.Logger
}

// NewGraphQLHandler construye el handler inyectando parser y motor.
func NewGraphQLHandler(parser *graphql.Parser, engine *graph.Engine, log zerolog.Logger) *GraphQLHandler {
	return &GraphQLHandler{
		parser:   parser,
		engine:   engine,
		validate: validator.New(),
		log:      log,
	}
}

// Post POST /graphql con cuerpo {query, operationName, variables}.
func (h *GraphQLHandler) Post(c *fiber.Ctx) error {
	var in dto.GraphQLRequest
	if err := dto.DecodeJSON(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.serve(c, in, true)
}

// Get GET /graphql?query=...&operationName=...&variables={...}. Solo admite consultas.
func (h *GraphQLHandler) Get(c *fiber.Ctx) error {
	in := dto.GraphQLRequest{
		Query:         c.Query("query"),
		OperationName: c.Query("operationName"),
	}
	if raw := c.Query("variables"); raw != "" {
		if err := dto.DecodeJSON([]byte(raw), &in.Variables); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_VARIABLES", Message: "variables debe ser un objeto JSON"})
		}
	}
	return h.serve(c, in, false)
}

// Schema GET /graphql/schema devuelve el SDL.
func (h *GraphQLHandler) Schema(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(graphql.SDL())
}

func (h *GraphQLHandler) serve(c *fiber.Ctx, in dto.GraphQLRequest, allowMutation bool) error {
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query es requerido"})
	}

	op, errs := h.parser.Parse(in.Query, in.OperationName, in.Variables)
	if len(errs) > 0 {
		h.log.Warn().Str("operation", in.OperationName).Err(errs).Msg("documento GraphQL rechazado")
		return c.Status(fiber.StatusBadRequest).JSON(dto.GraphQLResponse{Errors: fromGQLErrors(errs)})
	}
	if op.Type == graph.OperationMutation && !allowMutation {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.ErrorResponse{Code: "METHOD_NOT_ALLOWED", Message: "las mutaciones requieren POST"})
	}

	start := time.Now()
	res := h.engine.Execute(c.UserContext(), op)
	h.log.Debug().
		Str("type", string(op.Type)).
		Str("operation", op.Name).
		Int("errors", len(res.Errors)).
		Dur("duration", time.Since(start)).
		Msg("graphql")

	return c.JSON(dto.GraphQLResponse{Data: res.Data, Errors: fromFieldErrors(res.Errors)})
}

func fromGQLErrors(list gqlerror.List) []dto.GraphQLError {
	out := make([]dto.GraphQLError, 0, len(list))
	for _, e := range list {
		ge := dto.GraphQLError{Message: e.Message}
		for _, loc := range e.Locations {
			ge.Locations = append(ge.Locations, dto.GraphQLLocation{Line: loc.Line, Column: loc.Column})
		}
		out = append(out, ge)
	}
	return out
}

func fromFieldErrors(list []graph.FieldError) []dto.GraphQLError {
	if len(list) == 0 {
		return nil
	}
	out := make([]dto.GraphQLError, 0, len(list))
	for _, e := range list {
		out = append(out, dto.GraphQLError{Message: e.Message, Path: e.Path})
	}
	return out
}
