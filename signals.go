package gilded

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for schema events.
var (
	SignalSchemaCreated = capitan.NewSignal("gilded.schema.created", "Schema constructed")
	SignalDumpStart     = capitan.NewSignal("gilded.dump.start", "Dump operation beginning")
	SignalDumpComplete  = capitan.NewSignal("gilded.dump.complete", "Dump operation finished")
	SignalLoadStart     = capitan.NewSignal("gilded.load.start", "Load operation beginning")
	SignalLoadComplete  = capitan.NewSignal("gilded.load.complete", "Load operation finished")
)

// Keys for typed event data.
var (
	KeyModel       = capitan.NewStringKey("model")
	KeyContentType = capitan.NewStringKey("content_type")
	KeyFieldCount  = capitan.NewIntKey("field_count")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitSchemaCreated emits an event when a schema is constructed.
func emitSchemaCreated(ctx context.Context, model, contentType string, fields int) {
	capitan.Emit(ctx, SignalSchemaCreated,
		KeyModel.Field(model),
		KeyContentType.Field(contentType),
		KeyFieldCount.Field(fields),
	)
}

// emitDumpStart emits an event when a dump begins.
func emitDumpStart(ctx context.Context, model, contentType string) {
	capitan.Emit(ctx, SignalDumpStart,
		KeyModel.Field(model),
		KeyContentType.Field(contentType),
	)
}

// emitDumpComplete emits an event when a dump finishes.
func emitDumpComplete(ctx context.Context, model, contentType string, fieldCount int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyModel.Field(model),
		KeyContentType.Field(contentType),
		KeyFieldCount.Field(fieldCount),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDumpComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDumpComplete, fields...)
	}
}

// emitLoadStart emits an event when a load begins.
func emitLoadStart(ctx context.Context, model, contentType string) {
	capitan.Emit(ctx, SignalLoadStart,
		KeyModel.Field(model),
		KeyContentType.Field(contentType),
	)
}

// emitLoadComplete emits an event when a load finishes.
func emitLoadComplete(ctx context.Context, model, contentType string, fieldCount int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyModel.Field(model),
		KeyContentType.Field(contentType),
		KeyFieldCount.Field(fieldCount),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalLoadComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalLoadComplete, fields...)
	}
}
