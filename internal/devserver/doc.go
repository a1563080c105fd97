// Package devserver previews Lucent apps during development.
//
// The server mounts an app producer against an in-memory document for
// each page request and serves the rendered HTML, with a WebSocket
// live-reload channel and a Prometheus metrics endpoint.
package devserver
