package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ProductRef id de producto tal como lo envía el frontend: número o string numérico ("7").
// null y "" se leen como 0 y los rechaza la validación del caso de uso.
type ProductRef int64

// UnmarshalJSON acepta 7, "7" y null.
func (r *ProductRef) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*r = 0
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
		if s == "" {
			*r = 0
			return nil
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("id de producto inválido: %s", string(b))
	}
	*r = ProductRef(n)
	return nil
}

// Int64 valor numérico del id.
func (r ProductRef) Int64() int64 { return int64(r) }

// jsonTruthy evalúa un valor JSON crudo como lo haría el frontend: null, false, 0 y "" son falsos.
func jsonTruthy(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}
