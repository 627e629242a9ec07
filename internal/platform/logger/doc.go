// Package logger builds the process logger from configuration and carries
// request-scoped loggers through context.Context.
//
// Handlers and services pull their logger with FromContextOrDefault so that
// every line written while serving a request carries its trace_id.
package logger
