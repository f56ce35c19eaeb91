package memory

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/facturas-graph/internal/domain"
	"github.com/jhoicas/facturas-graph/internal/domain/entity"
)

//go:embed seed.yaml
var defaultSeed []byte

// seedFile es el formato YAML del conjunto de datos inicial.
// Las líneas referencian el producto por id; al cargar se copia el producto por valor.
type seedFile struct {
	Companies []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"companies"`
	Clients []struct {
		ID        string `yaml:"id"`
		Name      string `yaml:"name"`
		CompanyID string `yaml:"companyId"`
	} `yaml:"clients"`
	Invoices []struct {
		ID       string `yaml:"id"`
		Number   string `yaml:"number"`
		ClientID string `yaml:"clientId"`
	} `yaml:"invoices"`
	Products []struct {
		ID        string  `yaml:"id"`
		Name      string  `yaml:"name"`
		UnitPrice float64 `yaml:"unitPrice"`
	} `yaml:"products"`
	InvoiceLines []struct {
		ID        string  `yaml:"id"`
		InvoiceID string  `yaml:"invoiceId"`
		ProductID string  `yaml:"productId"`
		Quantity  int     `yaml:"quantity"`
		UnitPrice float64 `yaml:"unitPrice"`
	} `yaml:"invoiceLines"`
}

// NewSeededStore construye un almacén con el conjunto de datos embebido.
func NewSeededStore() (*Store, error) {
	return LoadSeed(bytes.NewReader(defaultSeed))
}

// LoadSeedFile carga un almacén desde un archivo YAML; path vacío usa el seed embebido.
func LoadSeedFile(path string) (*Store, error) {
	if path == "" {
		return NewSeededStore()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir seed: %w", err)
	}
	defer f.Close()
	return LoadSeed(f)
}

// LoadSeed decodifica el YAML y puebla un almacén nuevo respetando el orden del archivo.
func LoadSeed(r io.Reader) (*Store, error) {
	var in seedFile
	if err := yaml.NewDecoder(r).Decode(&in); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decodificar seed: %w", err)
	}

	s := NewStore()
	records := make([]entity.Record, 0,
		len(in.Companies)+len(in.Clients)+len(in.Invoices)+len(in.Products)+len(in.InvoiceLines))
	for _, c := range in.Companies {
		records = append(records, &entity.Company{ID: c.ID, Name: c.Name})
	}
	for _, c := range in.Clients {
		records = append(records, &entity.Client{ID: c.ID, Name: c.Name, CompanyID: c.CompanyID})
	}
	for _, i := range in.Invoices {
		records = append(records, &entity.Invoice{ID: i.ID, Number: i.Number, ClientID: i.ClientID})
	}
	products := make(map[string]entity.Product, len(in.Products))
	for _, p := range in.Products {
		prod := entity.Product{ID: p.ID, Name: p.Name, UnitPrice: decimal.NewFromFloat(p.UnitPrice)}
		products[p.ID] = prod
		records = append(records, &prod)
	}
	for _, l := range in.InvoiceLines {
		prod, ok := products[l.ProductID]
		if !ok {
			return nil, fmt.Errorf("línea %q: producto %q: %w", l.ID, l.ProductID, domain.ErrNotFound)
		}
		records = append(records, &entity.InvoiceLine{
			ID:        l.ID,
			InvoiceID: l.InvoiceID,
			Product:   prod,
			Quantity:  l.Quantity,
			UnitPrice: decimal.NewFromFloat(l.UnitPrice),
		})
	}

	for _, rec := range records {
		if err := s.Append(rec); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}
	return s, nil
}
