// internal/models/metadata.go
package models

import (
	"errors"
	"fmt"
	"strconv"
)

// Metadata keys recognized by the registry. The bag is open: unknown keys
// pass through untouched.
const (
	MetaName           = "name"
	MetaBrand          = "brand"
	MetaModel          = "model"
	MetaSerialNumber   = "serial_number"
	MetaYear           = "year"
	MetaProductionDate = "production_date"
	MetaPurchaseDate   = "purchase_date"
	MetaPurchasePrice  = "purchase_price"
	MetaCurrency       = "currency"
	MetaDescription    = "description"
)

// ErrConflictingProductionTime is returned when metadata carries both a
// production year and an exact production date. The two are mutually
// exclusive representations of manufacture time.
var ErrConflictingProductionTime = errors.New("metadata must carry either year or production_date, not both")

// NormalizeMetadata sanitizes a raw metadata bag before persistence:
// empty-string values are dropped (absence, not ""), the year field is
// coerced to an integer, and the year/production_date exclusivity rule
// is enforced at the service boundary rather than trusted to clients.
func NormalizeMetadata(in map[string]interface{}) (JSONB, error) {
	out := make(JSONB, len(in))

	for key, value := range in {
		if str, ok := value.(string); ok && str == "" {
			continue
		}
		out[key] = value
	}

	if rawYear, ok := out[MetaYear]; ok {
		year, err := coerceYear(rawYear)
		if err != nil {
			return nil, err
		}
		out[MetaYear] = year
	}

	_, hasYear := out[MetaYear]
	_, hasDate := out[MetaProductionDate]
	if hasYear && hasDate {
		return nil, ErrConflictingProductionTime
	}

	return out, nil
}

func coerceYear(raw interface{}) (int, error) {
	var year int

	switch v := raw.(type) {
	case int:
		year = v
	case int64:
		year = int(v)
	case float64:
		year = int(v)
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("metadata year %q is not an integer", v)
		}
		year = parsed
	default:
		return 0, fmt.Errorf("metadata year has unsupported type %T", raw)
	}

	if year < 1000 || year > 9999 {
		return 0, fmt.Errorf("metadata year %d out of range", year)
	}

	return year, nil
}
