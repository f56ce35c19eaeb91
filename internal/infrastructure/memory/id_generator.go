package memory

import (
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/facturas-graph/internal/domain/entity"
	"github.com/jhoicas/facturas-graph/internal/domain/repository"
)

var (
	_ repository.IDGenerator = (*SequenceGenerator)(nil)
	_ repository.IDGenerator = UUIDGenerator{}
)

// Estrategias de generación de IDs (ID_STRATEGY).
const (
	IDStrategySequence = "sequence"
	IDStrategyUUID     = "uuid"
)

// SequenceGenerator entrega IDs decimales monótonos por tipo.
// Cada contador arranca en max(tamaño de la colección, mayor id numérico) y nunca retrocede,
// así que un borrado no provoca colisiones. Sin borrados coincide con str(len+1).
type SequenceGenerator struct {
	mu   sync.Mutex
	next map[entity.Kind]int
}

// NewSequenceGenerator inicializa los contadores a partir del contenido actual del almacén.
func NewSequenceGenerator(s *Store) *SequenceGenerator {
	g := &SequenceGenerator{next: make(map[entity.Kind]int)}
	for _, k := range entity.Kinds() {
		recs := s.All(k)
		last := len(recs)
		for _, r := range recs {
			if n, err := strconv.Atoi(r.RecordID()); err == nil && n > last {
				last = n
			}
		}
		g.next[k] = last
	}
	return g
}

// NextID implementa repository.IDGenerator.
func (g *SequenceGenerator) NextID(kind entity.Kind) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next[kind]++
	return strconv.Itoa(g.next[kind])
}

// UUIDGenerator entrega UUID v4.
type UUIDGenerator struct{}

// NextID implementa repository.IDGenerator.
func (UUIDGenerator) NextID(entity.Kind) string {
	return uuid.New().String()
}

// NewIDGenerator elige la estrategia configurada; cualquier valor distinto de "uuid" usa secuencia.
func NewIDGenerator(strategy string, s *Store) repository.IDGenerator {
	if strategy == IDStrategyUUID {
		return UUIDGenerator{}
	}
	return NewSequenceGenerator(s)
}
