package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Address is the ViaCEP answer for one postal code.
type Address struct {
	CEP         string   `json:"cep"`
	Logradouro  string   `json:"logradouro"`
	Complemento string   `json:"complemento"`
	Bairro      string   `json:"bairro"`
	Localidade  string   `json:"localidade"`
	UF          string   `json:"uf"`
	IBGE        string   `json:"ibge,omitempty"`
	DDD         string   `json:"ddd,omitempty"`
	Erro        NotFound `json:"erro,omitempty"`
}

// NotFound is the "erro" flag. The service has sent it both as a boolean
// and as the string "true"; any other non-empty string also means the
// postal code was not found.
type NotFound bool

func (n *NotFound) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = false
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*n = NotFound(b)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if parsed, err := strconv.ParseBool(s); err == nil {
		*n = NotFound(parsed)
		return nil
	}
	*n = NotFound(s != "")
	return nil
}
