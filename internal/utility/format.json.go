package utility

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
)

// DecodeJSON decodes a request body into v, turning decoder failures into
// 400 errors keyed by the offending field when it is known.
func DecodeJSON(data []byte, v interface{}) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return common.FieldError("body", "request body is empty")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(v); err != nil {
		return decodeError(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return common.FieldError("body", "request body must contain a single JSON object")
	}
	return nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return common.FieldError(typeErr.Field, fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type.String()))
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return common.FieldError("body", fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset))
	}
	return common.FieldError("body", err.Error())
}
