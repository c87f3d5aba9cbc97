package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/samber/lo"
)

var ErrNotConfigured = errors.New("onesignal app id or api key is missing")

type Client struct {
	appID      string
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func NewClient(appID, apiKey string) *Client {
	return &Client{
		appID:      appID,
		apiKey:     apiKey,
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientFromEnv: ONESIGNAL_APP_ID, ONESIGNAL_API_KEY
func NewClientFromEnv() *Client {
	return NewClient(os.Getenv("ONESIGNAL_APP_ID"), os.Getenv("ONESIGNAL_API_KEY"))
}

func (c *Client) Push(ctx context.Context, payload Payload) error {
	if c.appID == "" || c.apiKey == "" {
		return ErrNotConfigured
	}

	externalIDs := lo.Compact(payload.PushUserList)
	if len(externalIDs) == 0 {
		return nil
	}

	message := PushMessage{
		AppID: c.appID,
		IncludeAliases: IncludeAliases{
			ExternalID: externalIDs,
		},
		TargetChannel: "push",
		Headings: map[string]string{
			"en": payload.Header,
		},
		Contents: map[string]string{
			"en": payload.Content,
		},
		AppUrl: payload.Url,
	}

	reqBody, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal reqBody: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Basic %s", c.apiKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return nil
}
