package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/llmsay/internal/errors"
	"github.com/diogo/llmsay/internal/logger"
	"github.com/diogo/llmsay/internal/models"
)

// Generate sends message to the endpoint in one non-streaming request and
// returns the reply. Nothing is retried.
func (c *OllamaClient) Generate(ctx context.Context, model, message string) (*models.GenerateOutput, error) {
	endpoint := c.Endpoint()

	payload, err := json.Marshal(models.NewGenerateRequest(model, message))
	if err != nil {
		return nil, fmt.Errorf("failed to build payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}

	c.log.WithFields(logger.Fields{
		"endpoint": endpoint,
		"model":    model,
	}).Debugf("sending generate request: %s", payload)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apierrors.NewNetworkErrorWithEndpoint("generate", endpoint,
				apierrors.NewTimeoutError(err.Error()))
		}
		return nil, apierrors.NewNetworkErrorWithEndpoint("generate", endpoint, err)
	}
	defer func() {
		if resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.NewNetworkErrorWithEndpoint("read generate response", endpoint, err)
	}

	c.log.WithFields(logger.Fields{
		"status":  resp.StatusCode,
		"bytes":   len(body),
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Debug("received generate response")

	if resp.StatusCode != http.StatusOK {
		excerpt := body
		if len(excerpt) > maxErrorBody {
			excerpt = excerpt[:maxErrorBody]
		}
		return nil, apierrors.NewAPIErrorWithBody(resp.StatusCode, endpoint, resp.Status, string(excerpt))
	}

	return parseResponse(body)
}

// parseResponse extracts the reply from a generate response body
func parseResponse(body []byte) (*models.GenerateOutput, error) {
	if !gjson.ValidBytes(body) {
		return nil, apierrors.NewParseError("response is not valid JSON", "")
	}

	parsed := gjson.ParseBytes(body)
	response := parsed.Get(PathResponse)
	if !response.Exists() {
		if msg := parsed.Get(PathError); msg.Exists() {
			return nil, apierrors.NewParseError("endpoint reported: "+msg.String(), PathResponse)
		}
		return nil, apierrors.NewParseError("field is missing", PathResponse)
	}
	if response.Type != gjson.String {
		return nil, apierrors.NewParseError("expected a string, got "+response.Type.String(), PathResponse)
	}

	return &models.GenerateOutput{
		Model:         parsed.Get(PathModel).String(),
		Response:      response.String(),
		Done:          parsed.Get(PathDone).Bool(),
		TotalDuration: time.Duration(parsed.Get(PathTotalDuration).Int()),
	}, nil
}
