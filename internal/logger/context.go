package logger

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/sirupsen/logrus"
)

type ContextKey string

const (
	RequestIDKey ContextKey = "requestID"
	ModuleKey    ContextKey = "module"
)

// ContextWithRequestID stores the request id so services can log it
// without seeing the fiber context.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// ContextWithModule tags ctx so WithContext entries carry the module field.
func ContextWithModule(ctx context.Context, module string) context.Context {
	return context.WithValue(ctx, ModuleKey, module)
}

// RequestIDFromContext returns the id stored by ContextWithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	rid, _ := ctx.Value(RequestIDKey).(string)
	return rid
}

// WithContext returns an app logger entry carrying the request id found in ctx.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := GetAppLogger().WithContext(ctx)
	if rid := RequestIDFromContext(ctx); rid != "" {
		entry = entry.WithField("request_id", rid)
	}
	if module, ok := ctx.Value(ModuleKey).(string); ok {
		entry = entry.WithField("module", module)
	}
	return entry
}

// WithRequest returns an app logger entry describing the current request.
func WithRequest(c fiber.Ctx) *logrus.Entry {
	return requestEntry(GetAppLogger(), c)
}

// ErrorWithRequest is WithRequest on the error logger.
func ErrorWithRequest(c fiber.Ctx) *logrus.Entry {
	return requestEntry(GetErrorLogger(), c)
}

func requestEntry(l *logrus.Logger, c fiber.Ctx) *logrus.Entry {
	entry := l.WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	})

	requestID := requestid.FromContext(c)
	if requestID == "" {
		requestID = c.Get(fiber.HeaderXRequestID)
	}
	if requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}
	return entry
}

func WithFields(fields map[string]interface{}) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields(fields))
}

func WithError(err error) *logrus.Entry {
	return GetErrorLogger().WithError(err)
}

// WithModule tags the entry with a module name (customer, sales, report...).
func WithModule(module string) *logrus.Entry {
	return GetAppLogger().WithField("module", module)
}

// WithCollection tags the entry with a MongoDB collection name.
func WithCollection(collection string) *logrus.Entry {
	return GetDBLogger().WithField("collection", collection)
}
