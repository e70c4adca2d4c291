package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// ServiceList is the subscriptions column. Rows written over the app's
// lifetime hold one of three shapes: a JSON array, a Postgres text[], or a
// plain string where "+" delimits entries and entries may be quote-wrapped.
// All three normalize to []string at the scan boundary; nothing downstream
// sees the raw column.
type ServiceList []string

func (s *ServiceList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var raw string
	switch v := value.(type) {
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("unsupported subscriptions column type %T", value)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		*s = nil
		return nil
	}

	switch raw[0] {
	case '[':
		var parsed []string
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			return err
		}
		*s = dropEmpty(parsed)
	case '{':
		var arr pq.StringArray
		if err := arr.Scan(raw); err != nil {
			return err
		}
		*s = dropEmpty(arr)
	default:
		*s = dropEmpty(splitServiceString(raw))
	}
	return nil
}

func (s ServiceList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (ServiceList) GormDataType() string { return "jsonb" }

// splitServiceString parses the legacy delimited form, e.g.
// `"Viki Pass" + "Kocowa+"` or a bare single name.
func splitServiceString(raw string) []string {
	if !strings.Contains(raw, "+") {
		return []string{trimQuotes(raw)}
	}
	parts := strings.Split(raw, "+")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, trimQuotes(strings.TrimSpace(p)))
	}
	return out
}

func trimQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

func dropEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
