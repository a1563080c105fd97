// Package runtime binds reactive producers to host tree roots.
//
// A Context owns a document and its live mounts. Mount wraps a view
// producer in a computed and an effect: signals the producer reads
// become dependencies, and any write re-renders through the positional
// reconciler. The first pass cold-renders; later passes diff.
//
// Observability is opt-in: EnableMetrics registers Prometheus
// collectors and EnableTracing emits OpenTelemetry spans around mount
// and reconciliation passes.
package runtime
