package models

import "time"

// GenerateRequest is the JSON body POSTed to EndpointGenerate
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// NewGenerateRequest builds a non-streaming request for message
func NewGenerateRequest(model, message string) GenerateRequest {
	return GenerateRequest{
		Model:  model,
		Prompt: BuildPrompt(message),
		Stream: false,
	}
}

// GenerateOutput is the subset of the generate reply llmsay reads.
// Only Response is required; the rest is informational.
type GenerateOutput struct {
	Model         string
	Response      string
	Done          bool
	TotalDuration time.Duration
}

// Text returns the reply text
func (o *GenerateOutput) Text() string {
	if o == nil {
		return ""
	}
	return o.Response
}
