package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"brewshop/internal/domain"
	"github.com/shopspring/decimal"
)

type BrewWriter interface {
	Upsert(ctx context.Context, b domain.Brew) (*domain.Brew, error)
}

// CSVImporter reads catalog exports and inserts/updates brews by key.
//
// Expected headers: key,name,description,price,currency,image.url,image.name.
// price is in major units ("3.50"). Column order does not matter.
type CSVImporter struct {
	reader   *csv.Reader
	brewRepo BrewWriter
}

func NewCSVImporter(r io.Reader, repo BrewWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:   csvr,
		brewRepo: repo,
	}
}

var requiredHeaders = []string{"key", "name", "price"}

// Run parses CSV rows and upserts one brew per non-blank row.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, h := range requiredHeaders {
		if _, ok := index[h]; !ok {
			return 0, fmt.Errorf("missing %q column", h)
		}
	}

	imported := 0
	for line := 2; ; line++ {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		if blank(record) {
			continue
		}

		b, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("line %d: %w", line, err)
		}
		if _, err := i.brewRepo.Upsert(ctx, b); err != nil {
			return imported, fmt.Errorf("upsert brew %q: %w", b.Key, err)
		}
		imported++
	}
	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (domain.Brew, error) {
	b := domain.Brew{
		Key:         pick(record, index, "key"),
		Name:        pick(record, index, "name"),
		Description: pick(record, index, "description"),
		Currency:    strings.ToUpper(pick(record, index, "currency")),
		Image: domain.Image{
			URL:  pick(record, index, "image.url"),
			Name: pick(record, index, "image.name"),
		},
	}
	if b.Currency == "" {
		b.Currency = "USD"
	}
	if b.Key == "" || b.Name == "" {
		return b, fmt.Errorf("invalid brew row (missing key or name) for key %q", b.Key)
	}

	price, err := decimal.NewFromString(pick(record, index, "price"))
	if err != nil {
		return b, fmt.Errorf("invalid price for key %q: %w", b.Key, err)
	}
	if price.IsNegative() {
		return b, fmt.Errorf("negative price for key %q", b.Key)
	}
	b.PriceCents = price.Shift(2).Round(0).IntPart()
	return b, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
