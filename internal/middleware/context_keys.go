package middleware

// contextKey is the type of keys stored in Gin and request contexts by this package.
// Using a custom type prevents collisions.
type contextKey string

// loggerKey is the key used to store the request-scoped logger.
const loggerKey = contextKey("logger")

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"
