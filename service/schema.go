package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"maps-gateway/model"

	"github.com/go-playground/validator/v10"
)

// 錯誤路徑使用 JSON 欄位名稱而非 Go 欄位名稱
var schemaValidator = model.NewValidator()

// DecodeRoutes 將 Google 回傳的每條 route 轉成 DirectionsRoute，遇到第一個結構錯誤就停止
func DecodeRoutes(raw []json.RawMessage) ([]model.DirectionsRoute, error) {
	routes := make([]model.DirectionsRoute, 0, len(raw))
	for i, r := range raw {
		var route model.DirectionsRoute
		if err := decodeAndValidate(r, &route, fmt.Sprintf("routes[%d]", i)); err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}
	return routes, nil
}

// DecodePlacesResult 缺少 results 或 html_attributions 時以空陣列表示
func DecodePlacesResult(raw json.RawMessage) (*model.PlacesResult, error) {
	var result model.PlacesResult
	if err := decodeAndValidate(raw, &result, ""); err != nil {
		return nil, err
	}
	if result.HTMLAttributions == nil {
		result.HTMLAttributions = []string{}
	}
	if result.Results == nil {
		result.Results = []model.Place{}
	}
	return &result, nil
}

func decodeAndValidate(raw json.RawMessage, dst any, prefix string) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return decodeSchemaError(err, raw, prefix)
	}
	if err := schemaValidator.Struct(dst); err != nil {
		return validationSchemaError(err, raw, prefix)
	}
	return nil
}

func decodeSchemaError(err error, raw json.RawMessage, prefix string) *model.SchemaError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &model.SchemaError{
			Path:    joinPath(prefix, indexedPath(raw, typeErr.Field, typeErr.Offset)),
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			Payload: raw,
		}
	}
	return &model.SchemaError{Path: prefix, Message: err.Error(), Payload: validPayload(raw)}
}

func validationSchemaError(err error, raw json.RawMessage, prefix string) *model.SchemaError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &model.SchemaError{Path: prefix, Message: err.Error(), Payload: raw}
	}

	fe := fieldErrs[0]
	// Namespace 以型別名稱開頭，例如 DirectionsRoute.legs[0].steps
	_, path, _ := strings.Cut(fe.Namespace(), ".")
	return &model.SchemaError{
		Path:    joinPath(prefix, path),
		Message: model.DescribeFieldError(fe),
		Payload: raw,
	}
}

// indexedPath 依 UnmarshalTypeError 的 Offset 在原始 JSON 中找回含陣列索引的路徑，
// 例如 legs.steps.duration.value 變成 legs[0].steps[2].duration.value；找不到時沿用 field
func indexedPath(raw []byte, field string, offset int64) string {
	type frame struct {
		array     bool
		path      string
		key       string
		index     int
		expectKey bool
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	var stack []*frame
	found := field
	for dec.InputOffset() < offset {
		tok, err := dec.Token()
		if err != nil {
			break
		}

		var top *frame
		if len(stack) > 0 {
			top = stack[len(stack)-1]
		}

		if d, ok := tok.(json.Delim); ok && (d == '}' || d == ']') {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 && !stack[len(stack)-1].array {
				stack[len(stack)-1].expectKey = true
			}
			continue
		}

		if top != nil && !top.array && top.expectKey {
			top.key, _ = tok.(string)
			top.expectKey = false
			continue
		}

		path := ""
		switch {
		case top == nil:
		case top.array:
			path = fmt.Sprintf("%s[%d]", top.path, top.index)
			top.index++
		default:
			path = joinPath(top.path, top.key)
		}
		if stripIndices(path) == field {
			found = path
		}

		if d, ok := tok.(json.Delim); ok {
			stack = append(stack, &frame{array: d == '[', path: path, expectKey: d == '{'})
			continue
		}
		if top != nil && !top.array {
			top.expectKey = true
		}
	}
	return found
}

func stripIndices(path string) string {
	var b strings.Builder
	inIndex := false
	for _, r := range path {
		switch {
		case r == '[':
			inIndex = true
		case r == ']':
			inIndex = false
		case !inIndex:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func joinPath(prefix, path string) string {
	switch {
	case prefix == "":
		return path
	case path == "":
		return prefix
	default:
		return prefix + "." + path
	}
}

// 語法錯誤的 payload 不是合法 JSON，無法直接寫進結構化日誌
func validPayload(raw json.RawMessage) json.RawMessage {
	if json.Valid(raw) {
		return raw
	}
	quoted, _ := json.Marshal(string(raw))
	return quoted
}
