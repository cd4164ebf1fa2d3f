package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/softblush/signup-landing/pkg/models"
)

// HTTPDoer executes HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client defines the interface for delivering signups to the ingestion endpoint
type Client interface {
	Configured() bool
	Deliver(ctx context.Context, payload models.SubmissionPayload) models.RemoteOutcome
}

type clientImpl struct {
	endpoint string
	http     HTTPDoer
}

// NewClient creates a client for endpoint. An empty or non-HTTP endpoint
// yields a client that never touches the network. A nil doer uses a plain
// http.Client with no timeout of its own.
func NewClient(endpoint string, doer HTTPDoer) Client {
	if doer == nil {
		doer = &http.Client{}
	}
	return &clientImpl{
		endpoint: strings.TrimSpace(endpoint),
		http:     doer,
	}
}

// IsHTTPURL reports whether raw is an absolute http or https URL
func IsHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (c *clientImpl) Configured() bool {
	return IsHTTPURL(c.endpoint)
}

// Deliver makes exactly one POST attempt and classifies the answer
func (c *clientImpl) Deliver(ctx context.Context, payload models.SubmissionPayload) models.RemoteOutcome {
	if !c.Configured() {
		return models.Unreachable(models.CauseNotConfigured)
	}

	body, err := c.post(ctx, payload)
	if err != nil {
		log.Printf("Error delivering signup: %v", err)
		return models.Unreachable(models.CauseNetwork)
	}
	return Classify(body)
}

func (c *clientImpl) post(ctx context.Context, payload models.SubmissionPayload) ([]byte, error) {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error posting signup: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	log.Printf("Ingestion endpoint answered %d (%d bytes)", resp.StatusCode, len(body))
	return body, nil
}

// Classify maps a response body to an outcome. The status code is not
// consulted: script-hosted endpoints answer 200 for errors too.
func Classify(body []byte) models.RemoteOutcome {
	var response map[string]interface{}
	if err := json.Unmarshal(body, &response); err != nil || response == nil {
		return models.Unreachable(models.CauseBadResponse)
	}

	if truthy(response["ok"]) {
		return models.Accepted()
	}

	msg, _ := response["error"].(string)
	if msg == "" {
		return models.Unreachable(models.CauseBadResponse)
	}
	if strings.Contains(strings.ToLower(msg), "duplicate") {
		return models.Duplicate(msg)
	}
	return models.Rejected(msg)
}

// truthy follows the loose truthiness JSON producers tend to rely on
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}
