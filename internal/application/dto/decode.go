package dto

import (
	"bytes"
	"encoding/json"
)

// DecodeJSON decodifica conservando los números como json.Number, para que un ID enviado
// como entero JSON (p. ej. {"id": 1}) llegue intacto a la coerción de variables.
func DecodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
