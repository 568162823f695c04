package api

import (
	"context"

	"github.com/diogo/llmsay/internal/models"
)

// MockClient is a mock implementation of Generator for testing
type MockClient struct {
	// Mock return values
	GenerateVal *models.GenerateOutput
	GenerateErr error

	// Call recorders
	GenerateCalled bool
	LastModel      string
	LastMessage    string
}

// Ensure MockClient implements Generator
var _ Generator = (*MockClient)(nil)

func (m *MockClient) Generate(ctx context.Context, model, message string) (*models.GenerateOutput, error) {
	m.GenerateCalled = true
	m.LastModel = model
	m.LastMessage = message
	if m.GenerateErr != nil {
		return nil, m.GenerateErr
	}
	return m.GenerateVal, nil
}
