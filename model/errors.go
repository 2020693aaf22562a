package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// ValidationError 呼叫端請求欄位不合法
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Message)
}

// SchemaError Google 回應缺少必要欄位或型別不符，代表供應商契約被破壞
type SchemaError struct {
	Path    string
	Message string
	Payload json.RawMessage
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return "provider response schema error: " + e.Message
	}
	return fmt.Sprintf("provider response schema error at %s: %s", e.Path, e.Message)
}

// ProviderError Google API 傳輸、授權或配額錯誤
type ProviderError struct {
	API     string
	Status  string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("google %s failed", e.API)
	if e.Status != "" {
		msg += ": " + e.Status
	}
	if e.Message != "" {
		msg += " (" + e.Message + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ProviderTimeoutError 對 Google 的呼叫超過設定的期限
type ProviderTimeoutError struct {
	API     string
	Timeout time.Duration
	Err     error
}

func (e *ProviderTimeoutError) Error() string {
	return fmt.Sprintf("google %s timed out after %s", e.API, e.Timeout)
}

func (e *ProviderTimeoutError) Unwrap() error {
	return e.Err
}
