package graph

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturas-graph/internal/application/relation"
	"github.com/jhoicas/facturas-graph/internal/domain"
	"github.com/jhoicas/facturas-graph/internal/domain/entity"
	"github.com/jhoicas/facturas-graph/internal/domain/repository"
)

// Mutations es el puerto de escritura que consume el motor.
// Un registro nil con error nil significa "no encontrado".
type Mutations interface {
	AddCompany(name string) (entity.Record, error)
	UpdateClient(id, name string) (entity.Record, error)
	DeleteInvoice(id string) (entity.Record, error)
}

// Observer recibe la duración y el resultado de cada operación.
type Observer interface {
	ObserveOperation(op OperationType, d time.Duration, failed bool)
}

// Option configura el Engine.
type Option func(*Engine)

// WithObserver registra un observador de operaciones.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// WithMemoization activa la memorización de hijos por operación, clave (tipo, fk, padre).
func WithMemoization(on bool) Option {
	return func(e *Engine) { e.memoize = on }
}

// WithLogger asigna el logger del motor.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// rootCollections son las consultas raíz sin filtro.
var rootCollections = map[string]entity.Kind{
	"companies": entity.KindCompany,
	"products":  entity.KindProduct,
}

// Engine resuelve operaciones contra el almacén. Las operaciones se serializan:
// cada una, con toda su recursión, termina antes de que empiece la siguiente.
type Engine struct {
	mu        sync.Mutex
	store     repository.EntityStore
	index     *relation.Index
	registry  *relation.Registry
	mutations Mutations
	observer  Observer
	memoize   bool
	log       zerolog.Logger
}

// NewEngine construye el motor. mutations puede ser nil para un motor de solo lectura.
func NewEngine(store repository.EntityStore, index *relation.Index, registry *relation.Registry, mutations Mutations, opts ...Option) *Engine {
	e := &Engine{
		store:     store,
		index:     index,
		registry:  registry,
		mutations: mutations,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute resuelve op completa y devuelve el árbol de resultado.
// Un fallo en un campo raíz deja ese campo en null y se reporta en Result.Errors;
// el resto de campos se sigue resolviendo.
func (e *Engine) Execute(ctx context.Context, op Operation) *Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	x := &execution{engine: e, resolver: e.index, data: newObject()}
	if e.memoize {
		x.memo = relation.NewMemo(e.index)
		x.resolver = x.memo
	}

	for _, f := range op.Selections {
		key := f.ResponseKey()
		path := []any{key}
		if err := ctx.Err(); err != nil {
			x.fail(path, err)
			x.data.Set(key, nil)
			continue
		}
		var (
			v   any
			err error
		)
		switch op.Type {
		case OperationQuery, "":
			v, err = x.query(f, path)
		case OperationMutation:
			v, err = x.mutate(f, path)
		default:
			err = fmt.Errorf("tipo %q: %w", op.Type, domain.ErrUnknownOperation)
		}
		if err != nil {
			x.fail(path, err)
			v = nil
		}
		x.data.Set(key, v)
	}

	elapsed := time.Since(start)
	if e.observer != nil {
		e.observer.ObserveOperation(opType(op), elapsed, len(x.errors) > 0)
	}
	e.log.Debug().
		Str("type", string(opType(op))).
		Str("operation", op.Name).
		Int("fields", len(op.Selections)).
		Int("errors", len(x.errors)).
		Dur("duration", elapsed).
		Msg("operación resuelta")

	return &Result{Data: x.data, Errors: x.errors}
}

func opType(op Operation) OperationType {
	if op.Type == "" {
		return OperationQuery
	}
	return op.Type
}

// execution es el estado de una sola operación.
type execution struct {
	engine   *Engine
	resolver relation.Resolver
	memo     *relation.Memo
	data     *Object
	errors   []FieldError
}

func (x *execution) fail(path []any, err error) {
	x.errors = append(x.errors, FieldError{Path: path, Message: err.Error(), Err: err})
}

// query despacha una consulta raíz.
func (x *execution) query(f Field, path []any) (any, error) {
	if f.Name == "__typename" {
		return "Query", nil
	}
	if kind, ok := rootCollections[f.Name]; ok {
		return x.list(x.engine.store.All(kind), f.Selections, path)
	}
	if rel, ok := x.engine.registry.ByRootQuery(f.Name); ok {
		parentID, err := stringArg(f, rel.RootArg)
		if err != nil {
			return nil, err
		}
		return x.list(x.resolver.ChildrenOf(rel.ChildKind, rel.ForeignKey, parentID), f.Selections, path)
	}
	return nil, fmt.Errorf("consulta %q: %w", f.Name, domain.ErrUnknownOperation)
}

// mutate aplica una mutación. Las mutaciones de una operación se ejecutan en orden de documento.
func (x *execution) mutate(f Field, path []any) (any, error) {
	if f.Name == "__typename" {
		return "Mutation", nil
	}
	m := x.engine.mutations
	if m == nil {
		return nil, fmt.Errorf("mutación %q: %w", f.Name, domain.ErrUnknownOperation)
	}

	var (
		rec entity.Record
		err error
	)
	switch f.Name {
	case "addCompany":
		var name string
		if name, err = stringArg(f, "name"); err != nil {
			return nil, err
		}
		rec, err = m.AddCompany(name)
	case "updateClient":
		var id, name string
		if id, err = stringArg(f, "id"); err != nil {
			return nil, err
		}
		if name, err = stringArg(f, "name"); err != nil {
			return nil, err
		}
		rec, err = m.UpdateClient(id, name)
	case "deleteInvoice":
		var id string
		if id, err = stringArg(f, "id"); err != nil {
			return nil, err
		}
		rec, err = m.DeleteInvoice(id)
	default:
		return nil, fmt.Errorf("mutación %q: %w", f.Name, domain.ErrUnknownOperation)
	}
	if x.memo != nil {
		x.memo.Invalidate()
	}
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return x.object(rec, f.Selections, path)
}

// list expande cada registro con las mismas sub-selecciones. Nunca devuelve nil.
func (x *execution) list(recs []entity.Record, sels []Field, path []any) ([]any, error) {
	out := make([]any, 0, len(recs))
	for i, rec := range recs {
		obj, err := x.object(rec, sels, childPath(path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}
	return out, nil
}

// object proyecta rec sobre sels; solo aparecen los campos pedidos, en el orden pedido.
func (x *execution) object(rec entity.Record, sels []Field, path []any) (*Object, error) {
	out := newObject()
	for _, f := range sels {
		key := f.ResponseKey()
		v, err := x.field(rec, f, childPath(path, key))
		if err != nil {
			return nil, err
		}
		out.Set(key, v)
	}
	return out, nil
}

// field resuelve un campo de rec: relación del registro, registro embebido o escalar.
func (x *execution) field(rec entity.Record, f Field, path []any) (any, error) {
	if f.Name == "__typename" {
		return string(rec.Kind()), nil
	}
	if rel, ok := x.engine.registry.Lookup(rec.Kind(), f.Name); ok {
		children := x.resolver.ChildrenOf(rel.ChildKind, rel.ForeignKey, rec.RecordID())
		return x.list(children, f.Selections, path)
	}

	v, ok := rec.Attr(f.Name)
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w", rec.Kind(), f.Name, domain.ErrUnknownField)
	}
	if sub, isRecord := v.(entity.Record); isRecord {
		if len(f.Selections) == 0 {
			return nil, fmt.Errorf("%s.%s requiere sub-selección: %w", rec.Kind(), f.Name, domain.ErrInvalidInput)
		}
		return x.object(sub, f.Selections, path)
	}
	if len(f.Selections) > 0 {
		return nil, fmt.Errorf("%s.%s no admite sub-selección: %w", rec.Kind(), f.Name, domain.ErrInvalidInput)
	}
	return leaf(v), nil
}

// leaf adapta valores de dominio a escalares GraphQL; los montos salen como Float.
func leaf(v any) any {
	if d, ok := v.(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return v
}

func stringArg(f Field, name string) (string, error) {
	v, ok := f.Args[name]
	if !ok || v == nil {
		return "", fmt.Errorf("%s(%s): %w", f.Name, name, domain.ErrMissingArgument)
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return fmt.Sprint(v), nil
}
