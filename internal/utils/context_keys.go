package utils

// contextKey is a type used for context keys to avoid conflicts with other packages' context keys.
type contextKey struct {
	name string
}

// Returns string representation of the context key.
func (c *contextKey) String() string {
	return c.name
}

// ClaimsKey is the context key used for storing JWT claims in a request context.
var ClaimsKey = &contextKey{"claims"}

// EmailKey is the context key used for storing the authenticated email claim.
var EmailKey = &contextKey{"email"}

// TraceIdKey is the context key used for storing the request trace ID.
var TraceIdKey = &contextKey{"traceId"}

// SanitizedPayloadKey is the context key used for storing the validated request body.
var SanitizedPayloadKey = &contextKey{"sanitizedPayload"}
