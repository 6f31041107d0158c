// Package tracing wires OpenTelemetry into randsym. Rewrites are recorded as
// spans once a provider is installed with Init or InitWithExporter; until
// then the global no-op provider is used and spans cost nothing.
package tracing
