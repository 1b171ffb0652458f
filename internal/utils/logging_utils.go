package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func GenerateTraceId() string {
	return uuid.New().String()
}

// LogEntry dispatches a message to the entry at the requested level.
func LogEntry(entry *log.Entry, level, message string) {
	switch level {
	case "debug":
		entry.Debug(message)
	case "info":
		entry.Info(message)
	case "warn":
		entry.Warn(message)
	case "error":
		entry.Error(message)
	case "fatal":
		entry.Fatal(message)
	case "panic":
		entry.Panic(message)
	default:
		entry.Info(message)
	}
}

func traceEntry(ctx *gin.Context) *log.Entry {
	traceId, _ := ctx.Value(TraceIdKey.String()).(string)
	return log.WithFields(log.Fields{
		"traceId": traceId,
	})
}

// LogMessageWithFields logs a message enriched with the request trace ID.
func LogMessageWithFields(ctx *gin.Context, level, message string) {
	LogEntry(traceEntry(ctx), level, message)
}

// LogMessageWithFieldsAndError logs a message and its underlying error with the request trace ID.
func LogMessageWithFieldsAndError(ctx *gin.Context, level, message string, err error) {
	LogEntry(traceEntry(ctx).WithError(err), level, message)
}
