package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ObserveOperation records one counter, one duration histogram, and one log
// line for a finished client operation.
func ObserveOperation(
	ctx context.Context,
	logger Logger,
	metrics MetricsRecorder,
	startedAt time.Time,
	operation string,
	err error,
	fields map[string]any,
) {
	operation = normalizeOperation(operation)
	if operation == "" {
		operation = "unknown"
	}
	status := "success"
	if err != nil {
		status = "failure"
	}

	contextFields := cloneFields(fields)
	contextFields["event_type"] = operation
	contextFields["status"] = status
	contextFields["duration_ms"] = time.Since(startedAt).Milliseconds()
	if err != nil {
		contextFields["error"] = err.Error()
	}

	tags := map[string]string{
		"operation": operation,
		"status":    status,
	}
	for _, key := range []string{"period_type", "location_id", "parking_session_id", "job_id"} {
		if value := strings.TrimSpace(fmt.Sprint(contextFields[key])); value != "" && value != "<nil>" {
			tags[key] = value
		}
	}

	if metrics != nil {
		metrics.IncCounter(ctx, "paybyphone."+operation+".total", 1, tags)
		metrics.ObserveHistogram(ctx, "paybyphone."+operation+".duration_ms", float64(time.Since(startedAt).Milliseconds()), tags)
	}

	if logger == nil {
		return
	}
	resolved := logger
	if ctx != nil {
		resolved = resolved.WithContext(ctx)
	}
	if fieldsLogger, ok := resolved.(FieldsLogger); ok {
		resolved = fieldsLogger.WithFields(cloneFields(contextFields))
	}
	args := flattenFields(contextFields)
	if err != nil {
		resolved.Error(operation+" failed", args...)
		return
	}
	resolved.Info(operation+" succeeded", args...)
}

func cloneFields(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return map[string]any{}
	}
	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return copied
}

func flattenFields(fields map[string]any) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	args := make([]any, 0, len(keys)*2)
	for _, key := range keys {
		args = append(args, key, fields[key])
	}
	return args
}

func normalizeOperation(operation string) string {
	operation = strings.TrimSpace(strings.ToLower(operation))
	operation = strings.ReplaceAll(operation, " ", "_")
	operation = strings.ReplaceAll(operation, "-", "_")
	return operation
}
