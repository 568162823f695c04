// Package api provides the client for a local Ollama-compatible generate endpoint.
package api

// GJSON paths for extracting values from generate replies.
const (
	PathResponse      = "response"
	PathModel         = "model"
	PathDone          = "done"
	PathTotalDuration = "total_duration" // nanoseconds
	PathError         = "error"
)

// maxErrorBody caps how much of a failed reply is kept for diagnostics
const maxErrorBody = 4096
