// Package requestid correlates log records of a single HTTP request.
//
// Middleware accepts a client supplied X-Request-ID when it is 1-128
// characters of letters, digits, '-' and '_', and generates a UUID otherwise.
// The id is echoed in the response header and stored in the request context;
// LoggerExtractor injects it into every log record written with that context.
package requestid
