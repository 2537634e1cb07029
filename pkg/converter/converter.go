package converter

import (
	"log/slog"

	"github.com/shunichi-ikebuchi/ledger-dashboard/pkg/ledger"
)

// Converter applies a Mapper to ledger records.
type Converter struct {
	mapper *Mapper
}

// NewConverter creates a new Converter. A nil mapper converts records unchanged.
func NewConverter(mapper *Mapper) *Converter {
	return &Converter{mapper: mapper}
}

// Convert returns a copy of records with unit, category and account labels mapped.
// The input slice is not modified.
func (c *Converter) Convert(records []ledger.Record) []ledger.Record {
	out := make([]ledger.Record, len(records))
	copy(out, records)
	if c.mapper == nil || c.mapper.Len() == 0 {
		return out
	}

	changed := 0
	for i := range out {
		r := &out[i]
		unit := c.mapper.Unit(r.Unit)
		category := c.mapper.Category(r.Category)
		account := c.mapper.Account(r.Account)
		if unit != r.Unit || category != r.Category || account != r.Account {
			changed++
		}
		r.Unit, r.Category, r.Account = unit, category, account
	}

	slog.Debug("Mapped ledger labels", "records", len(out), "changed", changed)
	return out
}
