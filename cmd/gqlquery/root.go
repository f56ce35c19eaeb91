package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jhoicas/facturas-graph/internal/app"
	"github.com/jhoicas/facturas-graph/internal/application/dto"
	"github.com/jhoicas/facturas-graph/internal/infrastructure/memory"
	"github.com/jhoicas/facturas-graph/internal/interfaces/graphql"
)

type runFlags struct {
	seed       string
	query      string
	vars       string
	operation  string
	idStrategy string
	memoize    bool
	pretty     bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "gqlquery",
		Short:         "Ejecuta consultas GraphQL sobre el conjunto de datos en memoria",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.AddCommand(newRunCmd(), newSchemaCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Ejecuta una consulta o mutación y escribe la respuesta JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd.Context(), cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "documento GraphQL")
	cmd.Flags().StringVar(&f.vars, "vars", "", "variables como objeto JSON")
	cmd.Flags().StringVar(&f.operation, "operation", "", "operationName si el documento tiene varias")
	cmd.Flags().StringVar(&f.seed, "seed", "", "archivo YAML de datos (vacío = seed embebido)")
	cmd.Flags().StringVar(&f.idStrategy, "ids", memory.IDStrategySequence, "estrategia de IDs: sequence | uuid")
	cmd.Flags().BoolVar(&f.memoize, "memoize", false, "memoriza hijos dentro de la operación")
	cmd.Flags().BoolVar(&f.pretty, "pretty", true, "indenta la salida")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Imprime el esquema GraphQL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), graphql.SDL())
			return err
		},
	}
}

func runQuery(ctx context.Context, out io.Writer, f runFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var vars map[string]any
	if strings.TrimSpace(f.vars) != "" {
		if err := dto.DecodeJSON([]byte(f.vars), &vars); err != nil {
			return fmt.Errorf("--vars: %w", err)
		}
	}

	store, err := memory.LoadSeedFile(f.seed)
	if err != nil {
		return err
	}
	parser, err := graphql.NewParser()
	if err != nil {
		return err
	}
	engine := app.NewEngine(store, app.EngineOptions{
		IDStrategy: f.idStrategy,
		Memoize:    f.memoize,
		Log:        zerolog.Nop(),
	})

	resp := dto.GraphQLResponse{}
	op, errs := parser.Parse(f.query, f.operation, vars)
	if len(errs) > 0 {
		for _, e := range errs {
			resp.Errors = append(resp.Errors, dto.GraphQLError{Message: e.Message})
		}
	} else {
		res := engine.Execute(ctx, op)
		resp.Data = res.Data
		for _, e := range res.Errors {
			resp.Errors = append(resp.Errors, dto.GraphQLError{Message: e.Message, Path: e.Path})
		}
	}

	enc := json.NewEncoder(out)
	if f.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(resp); err != nil {
		return err
	}
	if len(resp.Errors) > 0 {
		return fmt.Errorf("la respuesta contiene %d error(es)", len(resp.Errors))
	}
	return nil
}
