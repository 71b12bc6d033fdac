package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

/*
DecodeStrict decodifica JSON rejeitando chaves desconhecidas
e garantindo que exista exatamente UM objeto JSON.
*/
func DecodeStrict(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return err
	}
	// não pode sobrar lixo depois do objeto
	if dec.More() {
		return errors.New("unexpected additional JSON content")
	}

	return nil
}

func BadRequest(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

// customiza as mensagens de "unknown field" se precisar
func FormatUnknownFieldError(err error) string {
	return fmt.Sprintf("%v", err)
}
