package otel

import (
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// RecordError marks span as failed with err. A nil err leaves span untouched.
func RecordError(err error, span trace.Span) {
	if err == nil || !span.IsRecording() {
		return
	}
	span.RecordError(err, trace.WithStackTrace(false))
	span.SetStatus(codes.Error, err.Error())
}
