package infra

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	ServiceName = "maps-gateway"
)

// 全局 tracer 實例
var globalTracer trace.Tracer

// InitTracer 初始化全局 tracer
func InitTracer() {
	globalTracer = otel.Tracer(ServiceName)
}

// GetTracer 獲取全局 tracer
func GetTracer() trace.Tracer {
	if globalTracer == nil {
		InitTracer()
	}
	return globalTracer
}

// StartSpan 開始一個新的 span
func StartSpan(ctx context.Context, operationName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := GetTracer().Start(ctx, operationName)
	if len(attrs) > 0 {
		span.SetAttributes(attrs...)
	}
	return ctx, span
}

// AddEvent 向 span 添加事件
func AddEvent(span trace.Span, eventName string, attrs ...attribute.KeyValue) {
	if span != nil {
		span.AddEvent(eventName, trace.WithAttributes(attrs...))
	}
}

// RecordError 記錄錯誤到 span
func RecordError(span trace.Span, err error, description string, attrs ...attribute.KeyValue) {
	if span != nil {
		span.RecordError(err)
		if description != "" {
			span.SetStatus(codes.Error, description)
		}
		if len(attrs) > 0 {
			span.SetAttributes(attrs...)
		}
	}
}

// MarkSuccess 標記 span 為成功
func MarkSuccess(span trace.Span, attrs ...attribute.KeyValue) {
	if span != nil {
		span.SetStatus(codes.Ok, "")
		if len(attrs) > 0 {
			span.SetAttributes(attrs...)
		}
	}
}

func AttrString(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

func AttrInt(key string, value int) attribute.KeyValue {
	return attribute.Int(key, value)
}

func AttrOperation(operation string) attribute.KeyValue {
	return attribute.String("service.operation", operation)
}

func AttrErrorType(errorType string) attribute.KeyValue {
	return attribute.String("error.type", errorType)
}

// StartGoogleSpan Google API 呼叫專用的 span
func StartGoogleSpan(ctx context.Context, api string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	baseAttrs := []attribute.KeyValue{
		AttrOperation(api),
		attribute.String("peer.service", "google-maps"),
	}
	baseAttrs = append(baseAttrs, attrs...)
	return StartSpan(ctx, "google_"+api, baseAttrs...)
}

// StartServiceSpan 服務層操作專用的 span
func StartServiceSpan(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	baseAttrs := []attribute.KeyValue{
		AttrOperation(operation),
	}
	baseAttrs = append(baseAttrs, attrs...)
	return StartSpan(ctx, "service_"+operation, baseAttrs...)
}
