// Package models contains wire types and constants for the Ollama generate API.
package models

// EndpointGenerate is appended to the configured base URL.
const EndpointGenerate = "/api/generate"

// SystemPrompt is prepended to every user message.
const SystemPrompt = "Answer concisely in 2-3 sentences with a touch of humor. " +
	"Plain text only, no formatting or quotes."

// BuildPrompt combines SystemPrompt with the user's message the way the
// endpoint receives it.
func BuildPrompt(message string) string {
	return SystemPrompt + ", Answer the following\n " + message
}

// DefaultHeaders returns headers sent with every request
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
}
