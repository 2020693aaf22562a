package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator 錯誤的 Field/Namespace 使用 JSON 欄位名稱而非 Go 欄位名稱
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var requestValidator = NewValidator()

// DescribeFieldError 把 validator 的 tag 轉成可讀訊息
func DescribeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field is missing"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %v", strings.Join(strings.Fields(fe.Param()), ", "), fe.Value())
	case "min", "max":
		return fmt.Sprintf("must satisfy %s=%s, got %v", fe.Tag(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// validateRequest 只回報第一個不合法的欄位
func validateRequest(req any) error {
	err := requestValidator.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	return &ValidationError{Field: fe.Field(), Message: DescribeFieldError(fe), Value: fe.Value()}
}
