package api

import (
	"context"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	http "github.com/bogdanfinn/fhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/llmsay/internal/errors"
	"github.com/diogo/llmsay/internal/models"
)

// fakeDoer records the request and replies with a canned response
type fakeDoer struct {
	status  int
	body    string
	err     error
	lastReq *http.Request
	payload []byte
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	f.lastReq = req
	if req.Body != nil {
		f.payload, _ = io.ReadAll(req.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &http.Response{
		StatusCode: f.status,
		Status:     http.StatusText(f.status),
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(f.body)),
	}, nil
}

func newTestClient(t *testing.T, doer Doer) *OllamaClient {
	t.Helper()
	client, err := NewClient("http://ollama.test:11434/", WithHTTPClient(doer))
	require.NoError(t, err)
	return client
}

func TestGenerate_Success(t *testing.T) {
	doer := &fakeDoer{
		status: 200,
		body:   `{"model":"llama3.2","response":"\"Hello there!\"","done":true,"total_duration":1500000000}`,
	}
	client := newTestClient(t, doer)

	out, err := client.Generate(context.Background(), "llama3.2", "say hi")
	require.NoError(t, err)

	assert.Equal(t, `"Hello there!"`, out.Text())
	assert.Equal(t, "llama3.2", out.Model)
	assert.True(t, out.Done)
	assert.Equal(t, 1500*time.Millisecond, out.TotalDuration)

	require.NotNil(t, doer.lastReq)
	assert.Equal(t, http.MethodPost, doer.lastReq.Method)
	assert.Equal(t, "http://ollama.test:11434/api/generate", doer.lastReq.URL.String())
	assert.Equal(t, "application/json", doer.lastReq.Header.Get("Content-Type"))

	require.True(t, gjson.ValidBytes(doer.payload))
	assert.Equal(t, "llama3.2", gjson.GetBytes(doer.payload, "model").String())
	assert.Equal(t, models.BuildPrompt("say hi"), gjson.GetBytes(doer.payload, "prompt").String())
	stream := gjson.GetBytes(doer.payload, "stream")
	assert.True(t, stream.Exists())
	assert.False(t, stream.Bool())
}

func TestGenerate_TransportFailure(t *testing.T) {
	doer := &fakeDoer{err: errors.New("dial tcp 127.0.0.1:11434: connect: connection refused")}
	client := newTestClient(t, doer)

	out, err := client.Generate(context.Background(), "llama3.2", "hi")
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, apierrors.IsNetworkError(err))
	assert.Equal(t, "http://ollama.test:11434/api/generate", apierrors.GetEndpoint(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGenerate_DeadlineExceeded(t *testing.T) {
	doer := &fakeDoer{err: context.DeadlineExceeded}
	client := newTestClient(t, doer)

	_, err := client.Generate(context.Background(), "llama3.2", "hi")
	require.Error(t, err)
	assert.True(t, apierrors.IsNetworkError(err))
	assert.True(t, apierrors.IsTimeoutError(err))
}

func TestGenerate_NonOKStatus(t *testing.T) {
	doer := &fakeDoer{status: 404, body: `{"error":"model 'nope' not found"}`}
	client := newTestClient(t, doer)

	_, err := client.Generate(context.Background(), "nope", "hi")
	require.Error(t, err)
	assert.Equal(t, 404, apierrors.GetHTTPStatus(err))
	assert.Equal(t, `{"error":"model 'nope' not found"}`, apierrors.GetResponseBody(err))
	assert.False(t, apierrors.IsNetworkError(err))
}

func TestGenerate_ErrorBodyTruncated(t *testing.T) {
	doer := &fakeDoer{status: 500, body: strings.Repeat("x", maxErrorBody*2)}
	client := newTestClient(t, doer)

	_, err := client.Generate(context.Background(), "llama3.2", "hi")
	require.Error(t, err)
	assert.Len(t, apierrors.GetResponseBody(err), maxErrorBody)
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr string
	}{
		{
			name: "minimal reply",
			body: `{"response":"ok"}`,
			want: "ok",
		},
		{
			name: "empty reply is still a reply",
			body: `{"response":""}`,
			want: "",
		},
		{
			name:    "garbage body",
			body:    "<html>bad gateway</html>",
			wantErr: "not valid JSON",
		},
		{
			name:    "missing response field",
			body:    `{"model":"llama3.2","done":true}`,
			wantErr: "field is missing",
		},
		{
			name:    "endpoint error message",
			body:    `{"error":"out of memory"}`,
			wantErr: "endpoint reported: out of memory",
		},
		{
			name:    "response is not a string",
			body:    `{"response":42}`,
			wantErr: "expected a string, got Number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := parseResponse([]byte(tt.body))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, apierrors.IsParseError(err))
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Text())
		})
	}
}

func TestNewClient_BaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", DefaultBaseURL},
		{"   ", DefaultBaseURL},
		{"http://localhost:11434", "http://localhost:11434"},
		{"http://localhost:11434/", "http://localhost:11434"},
		{"http://gpu-box:8080//", "http://gpu-box:8080"},
	}

	for _, tt := range tests {
		client, err := NewClient(tt.in, WithHTTPClient(&fakeDoer{}))
		require.NoError(t, err)
		assert.Equal(t, tt.want, client.BaseURL())
		assert.Equal(t, tt.want+"/api/generate", client.Endpoint())
	}
}

func TestNewClient_DefaultHTTPClient(t *testing.T) {
	client, err := NewClient("", WithTimeout(5*time.Second))
	require.NoError(t, err)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 5*time.Second, client.timeout)
}

func TestGenerate_DefaultTransportAgainstLocalServer(t *testing.T) {
	var method, path, contentType string
	var payload []byte
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		method = r.Method
		path = r.URL.Path
		contentType = r.Header.Get("Content-Type")
		payload, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"model":"m","response":"pong","done":true}`)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, WithTimeout(5*time.Second))
	require.NoError(t, err)

	out, err := client.Generate(context.Background(), "m", "q")
	require.NoError(t, err)
	assert.Equal(t, "pong", out.Text())
	assert.True(t, out.Done)

	assert.Equal(t, nethttp.MethodPost, method)
	assert.Equal(t, models.EndpointGenerate, path)
	assert.Equal(t, "application/json", contentType)

	require.True(t, gjson.ValidBytes(payload), "payload = %q", payload)
	assert.Equal(t, "m", gjson.GetBytes(payload, "model").String())
	assert.Equal(t, models.BuildPrompt("q"), gjson.GetBytes(payload, "prompt").String())
	stream := gjson.GetBytes(payload, "stream")
	assert.True(t, stream.Exists())
	assert.False(t, stream.Bool())
}

func TestGenerate_UnreachableEndpoint(t *testing.T) {
	// Port 1 on loopback is not expected to accept connections.
	client, err := NewClient("http://127.0.0.1:1", WithTimeout(5*time.Second))
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "llama3.2", "hi")
	require.Error(t, err)
	assert.True(t, apierrors.IsNetworkError(err))
}

func TestMockClient(t *testing.T) {
	mock := &MockClient{GenerateVal: &models.GenerateOutput{Response: "moo"}}

	out, err := mock.Generate(context.Background(), "m", "msg")
	require.NoError(t, err)
	assert.Equal(t, "moo", out.Text())
	assert.True(t, mock.GenerateCalled)
	assert.Equal(t, "m", mock.LastModel)
	assert.Equal(t, "msg", mock.LastMessage)
}
