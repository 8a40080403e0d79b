package kv

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Doc es un registro JSON ya decodificado.
type Doc map[string]any

// Number lee key como número. Acepta números JSON y strings numéricos
// (el dispositivo a veces escribe "45"). ok=false si falta o no es numérico.
func (d Doc) Number(key string) (float64, bool) {
	v, exists := d[key]
	if !exists || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Bool lee key como booleano. Acepta bool y strings "true"/"false".
func (d Doc) Bool(key string) (bool, bool) {
	v, exists := d[key]
	if !exists || v == nil {
		return false, false
	}
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return parsed, err == nil
	default:
		return false, false
	}
}

// String lee key como string (números se formatean).
func (d Doc) String(key string) string {
	v, exists := d[key]
	if !exists || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// Decode convierte un JSON crudo en Doc. "null" o un valor que no es
// objeto devuelven (nil, nil).
func Decode(raw []byte) (Doc, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, nil
	}
	return Doc(m), nil
}

// Encode serializa doc a JSON para backends que guardan texto.
func Encode(doc any) ([]byte, error) {
	return json.Marshal(doc)
}
