package line

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
)

const defaultReplyTimeout = 10 * time.Second

// Replier sends a text reply to an inbound event.
type Replier interface {
	ReplyText(ctx context.Context, replyToken, text string) error
}

// Config holds the Messaging API credentials and endpoint.
type Config struct {
	ChannelAccessToken string
	// Endpoint overrides https://api.line.me when set.
	Endpoint   string
	HTTPClient *http.Client
}

// Client replies through the LINE Messaging API.
type Client struct {
	api *messaging_api.MessagingApiAPI
}

// NewClient builds a Messaging API client for the channel.
func NewClient(cfg Config) (*Client, error) {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultReplyTimeout}
	}
	opts := []messaging_api.MessagingApiAPIOption{
		messaging_api.WithHTTPClient(httpClient),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, messaging_api.WithEndpoint(cfg.Endpoint))
	}
	api, err := messaging_api.NewMessagingApiAPI(cfg.ChannelAccessToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("line: create messaging client: %w", err)
	}
	return &Client{api: api}, nil
}

// ReplyText answers replyToken with a single text message.
func (c *Client) ReplyText(ctx context.Context, replyToken, text string) error {
	_, err := c.api.WithContext(ctx).ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: text},
		},
	})
	if err != nil {
		return fmt.Errorf("line: reply: %w", err)
	}
	return nil
}

var _ Replier = (*Client)(nil)
