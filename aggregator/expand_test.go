package aggregator

import (
	"strings"
	"testing"

	"github.com/SiddheshKanawade/news-hub-backend/registry"
)

const companiesCSV = `SYMBOL,NAME OF COMPANY, SERIES, DATE OF LISTING, PAID UP VALUE, MARKET LOT, ISIN NUMBER, FACE VALUE
EX,Example Limited,EQ,01-JAN-2000,10,1,INE000000001,10
TCS,Tata Consultancy Services Limited,EQ,25-AUG-2004,1,1,INE467B01029,1
`

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.Parse(strings.NewReader(companiesCSV))
	if err != nil {
		t.Fatalf("parse registry: %v", err)
	}
	return reg
}

func TestAcronym(t *testing.T) {
	tests := []struct{ name, want string }{
		{"Example Limited", "EL"},
		{"Tata Consultancy Services Limited", "TCSL"},
		{"Single", "S"},
		{"Örsted Ålborg Energy", "ÖÅE"},
	}
	for _, tt := range tests {
		if got := Acronym(tt.name); got != tt.want {
			t.Errorf("Acronym(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestStripLegalSuffix(t *testing.T) {
	tests := []struct{ name, want string }{
		{"Example Limited", "Example"},
		{"Acme Ltd", "Acme"},
		{"Tata Consultancy Services Limited", "Tata Consultancy Services"},
		{"No Suffix Corp", "No Suffix Corp"},
	}
	for _, tt := range tests {
		if got := StripLegalSuffix(tt.name); got != tt.want {
			t.Errorf("StripLegalSuffix(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestExpandKeywordWithTicker(t *testing.T) {
	e := &Engine{registry: testRegistry(t)}

	terms := e.expandKeyword("Example Limited")
	want := []string{"EL", "Example", "EX"}
	if len(terms) != len(want) {
		t.Fatalf("terms = %v, want %v", terms, want)
	}
	for i := range want {
		if terms[i] != want[i] {
			t.Errorf("terms[%d] = %q, want %q", i, terms[i], want[i])
		}
	}
}

func TestExpandKeywordWithoutTicker(t *testing.T) {
	e := &Engine{registry: testRegistry(t)}

	terms := e.expandKeyword("Unknown Industries Limited")
	if len(terms) != 2 {
		t.Fatalf("terms = %v, want 2 entries when ticker is unknown", terms)
	}
}
