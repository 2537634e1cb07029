package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// ReadOptions controls how a delimited ledger file is parsed.
type ReadOptions struct {
	// Delimiter is the field separator. Zero means ','.
	Delimiter rune
}

// ReadFile reads all ledger records from the file at path.
// Every failure, including an unreadable file, is returned as *InputError.
func ReadFile(path string, opts ReadOptions) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: fmt.Errorf("failed to open ledger file: %w", err)}
	}
	defer f.Close()

	records, err := Read(f, opts)
	if err != nil {
		var inputErr *InputError
		if errors.As(err, &inputErr) && inputErr.Path == "" {
			inputErr.Path = path
		}
		return nil, err
	}

	slog.Debug("Read ledger file", "path", path, "records", len(records))
	return records, nil
}

// Read parses a delimited ledger from r.
//
// Header names are trimmed of surrounding whitespace before the required
// columns are located; extra columns are ignored. Cell values are kept
// verbatim, except that the amount cell is trimmed before numeric parsing.
func Read(r io.Reader, opts ReadOptions) ([]Record, error) {
	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	// Row width is checked against the located columns below.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &InputError{Line: 1, Err: errors.New("missing header row")}
	}
	if err != nil {
		return nil, &InputError{Err: fmt.Errorf("failed to read header: %w", err)}
	}

	idx, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	records := []Record{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, &InputError{Line: parseErr.StartLine, Err: parseErr.Err}
			}
			return nil, &InputError{Err: fmt.Errorf("failed to read row: %w", err)}
		}
		line, _ := cr.FieldPos(0)

		rec, err := parseRow(row, idx, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// columnIndex holds the position of each required column in a row.
type columnIndex struct {
	unit, category, account, amount int
}

func (c columnIndex) last() int {
	return max(c.unit, c.category, c.account, c.amount)
}

func locateColumns(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := positions[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return columnIndex{}, &InputError{
			Line: 1,
			Err:  fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", ")),
		}
	}

	return columnIndex{
		unit:     positions[ColumnUnit],
		category: positions[ColumnCategory],
		account:  positions[ColumnAccount],
		amount:   positions[ColumnAmount],
	}, nil
}

func parseRow(row []string, idx columnIndex, line int) (Record, error) {
	if len(row) <= idx.last() {
		return Record{}, &InputError{
			Line: line,
			Err:  fmt.Errorf("row has %d field(s), required columns need %d", len(row), idx.last()+1),
		}
	}

	raw := strings.TrimSpace(row[idx.amount])
	if raw == "" {
		return Record{}, &InputError{Line: line, Column: ColumnAmount, Err: errors.New("amount is missing")}
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return Record{}, &InputError{
			Line:   line,
			Column: ColumnAmount,
			Err:    fmt.Errorf("amount %q is not numeric", raw),
		}
	}
	if f := amount.InexactFloat64(); math.IsInf(f, 0) {
		return Record{}, &InputError{
			Line:   line,
			Column: ColumnAmount,
			Err:    fmt.Errorf("amount %q is out of range", raw),
		}
	}

	return Record{
		Unit:     row[idx.unit],
		Category: row[idx.category],
		Account:  row[idx.account],
		Amount:   amount,
		Line:     line,
	}, nil
}
