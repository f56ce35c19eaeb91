// Package app cablea el almacén, el índice de relaciones, las mutaciones y el motor.
package app

import (
	"github.com/rs/zerolog"

	"github.com/jhoicas/facturas-graph/internal/application/graph"
	"github.com/jhoicas/facturas-graph/internal/application/relation"
	"github.com/jhoicas/facturas-graph/internal/application/usecase"
	"github.com/jhoicas/facturas-graph/internal/infrastructure/memory"
	"github.com/jhoicas/facturas-graph/internal/observability"
)

// EngineOptions opciones de construcción del motor.
type EngineOptions struct {
	IDStrategy string
	Memoize    bool
	Metrics    *observability.Metrics // nil = sin métricas
	Log        zerolog.Logger
}

// NewEngine construye un motor listo para usar sobre s.
func NewEngine(s *memory.Store, opts EngineOptions) *graph.Engine {
	var scanObs relation.ScanObserver
	engineOpts := []graph.Option{
		graph.WithMemoization(opts.Memoize),
		graph.WithLogger(opts.Log),
	}
	if opts.Metrics != nil {
		scanObs = opts.Metrics
		engineOpts = append(engineOpts, graph.WithObserver(opts.Metrics))
	}
	return graph.NewEngine(
		s,
		relation.NewIndex(s, scanObs),
		relation.DefaultRegistry(),
		usecase.NewMutations(s, opts.IDStrategy),
		engineOpts...,
	)
}
