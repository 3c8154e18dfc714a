package nimbus

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	config "github.com/insightfinder/nimbus-agent/configs"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const (
	LOCATION_GROUP_API = "/RESTApi/LocationGroup"
	SCHEDULE_GROUP_API = "/RESTApi/ScheduleGroup"
)

func NewService(cfg config.NimbusConfig) *Service {
	// Create HTTP client with SSL verification settings
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: !cfg.VerifySSL,
		},
	}

	// The operations themselves never impose a deadline; a deployment that
	// needs bounded latency sets request_timeout in the config.
	client := &http.Client{
		Transport: tr,
		Timeout:   time.Duration(cfg.RequestTimeout) * time.Second,
	}

	return &Service{HttpClient: client}
}

// postForID runs the request sequence both create operations share: build
// the auth headers, POST the JSON payload to baseURL+path, check the
// status, parse the body and extract the named integer field. Exactly one
// request goes out per call; there are no retries.
func (s *Service) postForID(ctx context.Context, baseURL, token, path string, payload interface{}, idField string) (int64, error) {
	headers, err := authHeaders(token)
	if err != nil {
		return 0, err
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request payload: %v", err)
	}

	url := baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header = headers

	logrus.Debugf("POST %s (%d bytes)", url, len(jsonPayload))

	resp, err := s.HttpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyText := "Unknown error"
		if readErr == nil {
			bodyText = string(body)
		}
		return 0, fmt.Errorf("API error (%s): %s", resp.Status, bodyText)
	}

	if readErr != nil {
		return 0, fmt.Errorf("failed to read response body: %v", readErr)
	}

	if !gjson.ValidBytes(body) {
		return 0, fmt.Errorf("failed to parse response: invalid JSON")
	}

	// The field must be a JSON integer literal; whole-valued floats like
	// 123.0 do not count.
	result := gjson.GetBytes(body, idField)
	if !result.Exists() || result.Type != gjson.Number || strings.ContainsAny(result.Raw, ".eE") {
		return 0, fmt.Errorf("%s not found in response", idField)
	}

	return result.Int(), nil
}
