// Package neynar is a minimal client for the Neynar cast-publish API. Only
// the reply surface used by the bot is covered.
package neynar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/joefazee/iwager/models"
)

const defaultBaseURL = "https://api.neynar.com/v2/farcaster"

// Publisher publishes threaded replies on the social network. The returned
// string is the hash of the published cast.
type Publisher interface {
	PublishReply(ctx context.Context, parentHash, text, embedURL string) (string, error)
}

// Config holds Neynar client credentials. SignerUUID identifies the bot
// account that signs outbound casts.
type Config struct {
	APIKey     string `env:"NEYNAR_API_KEY"`
	SignerUUID string `env:"NEYNAR_SIGNER_UUID"`
	BaseURL    string `env:"NEYNAR_BASE_URL"`
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return models.ErrNeynarKeyNotConfigured
	}
	if c.SignerUUID == "" {
		return models.ErrSignerNotConfigured
	}
	return nil
}

type Client struct {
	apiKey     string
	signerUUID string
	baseURL    string
	client     *http.Client
}

// NewClient creates a Neynar client with a 10-second request timeout.
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:     cfg.APIKey,
		signerUUID: cfg.SignerUUID,
		baseURL:    baseURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type castEmbed struct {
	URL string `json:"url"`
}

type publishCastRequest struct {
	SignerUUID string      `json:"signer_uuid"`
	Text       string      `json:"text"`
	Parent     string      `json:"parent,omitempty"`
	Embeds     []castEmbed `json:"embeds,omitempty"`
}

type publishCastResponse struct {
	Success bool `json:"success"`
	Cast    struct {
		Hash string `json:"hash"`
	} `json:"cast"`
}

// PublishReply publishes text as a threaded reply to parentHash. A non-empty
// embedURL is attached as a rich embed.
func (c *Client) PublishReply(ctx context.Context, parentHash, text, embedURL string) (string, error) {
	payload := publishCastRequest{
		SignerUUID: c.signerUUID,
		Text:       text,
		Parent:     parentHash,
	}
	if embedURL != "" {
		payload.Embeds = []castEmbed{{URL: embedURL}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("neynar: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/cast", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("neynar: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("neynar: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("neynar: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var out publishCastResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("neynar: decode response: %w", err)
	}
	if out.Cast.Hash == "" {
		return "", fmt.Errorf("neynar: publish succeeded but no cast hash returned")
	}
	return out.Cast.Hash, nil
}
