// Package registry loads the NSE company reference list used for ticker
// lookups and the companies listing endpoint.
package registry

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/SiddheshKanawade/news-hub-backend/model"
)

// Registry is an in-memory snapshot of the listed-company CSV. Read-only
// after Load, so safe for concurrent use.
type Registry struct {
	companies []model.NSECompany
	bySymbol  map[string]model.NSECompany
	byName    map[string]string
}

// Load reads the company CSV from path. Expected header: SYMBOL, NAME OF
// COMPANY, SERIES, DATE OF LISTING, PAID UP VALUE, MARKET LOT, ISIN NUMBER,
// FACE VALUE (the exchange ships the header with stray spaces).
func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open companies csv: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads the company CSV from any reader.
func Parse(r io.Reader) (*Registry, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read companies csv header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"SYMBOL", "NAME OF COMPANY"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("companies csv missing %q column", required)
		}
	}

	reg := &Registry{
		bySymbol: map[string]model.NSECompany{},
		byName:   map[string]string{},
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Skipping malformed company row: %v", err)
			continue
		}

		company := model.NSECompany{
			Symbol:        field(record, col, "SYMBOL"),
			Name:          field(record, col, "NAME OF COMPANY"),
			Series:        field(record, col, "SERIES"),
			DateOfListing: field(record, col, "DATE OF LISTING"),
			PaidUpValue:   intField(record, col, "PAID UP VALUE"),
			MarketLot:     intField(record, col, "MARKET LOT"),
			ISINNumber:    field(record, col, "ISIN NUMBER"),
			FaceValue:     intField(record, col, "FACE VALUE"),
		}
		if company.Symbol == "" || company.Name == "" {
			continue
		}

		reg.companies = append(reg.companies, company)
		reg.bySymbol[company.Symbol] = company
		reg.byName[company.Name] = company.Symbol
	}

	log.Printf("Loaded %d companies into registry", len(reg.companies))
	return reg, nil
}

func field(record []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func intField(record []string, col map[string]int, name string) int {
	v, err := strconv.Atoi(field(record, col, name))
	if err != nil {
		return 0
	}
	return v
}

// Companies returns every registry entry.
func (r *Registry) Companies() []model.NSECompany {
	return r.companies
}

// TickerFor looks up a stock symbol by exact company name. The empty string
// means no match.
func (r *Registry) TickerFor(name string) string {
	return r.byName[name]
}
