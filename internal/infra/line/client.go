package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Client is a minimal LINE Messaging API client. Only the reply
// endpoint is needed: the bot never pushes, it answers webhook events.
type Client struct {
	base  string
	token string
	http  *http.Client
}

func NewClient(baseURL, channelToken string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		base:  strings.TrimRight(baseURL, "/"),
		token: channelToken,
		http:  httpClient,
	}
}

type replyRequest struct {
	ReplyToken string    `json:"replyToken"`
	Messages   []Message `json:"messages"`
}

// Reply sends up to five messages in answer to one webhook event.
func (c *Client) Reply(ctx context.Context, replyToken string, msgs ...Message) error {
	if len(msgs) == 0 {
		return nil
	}
	body, err := json.Marshal(replyRequest{ReplyToken: replyToken, Messages: msgs})
	if err != nil {
		return fmt.Errorf("marshal reply: %w", err)
	}

	urlStr := c.base + "/v2/bot/message/reply"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, urlStr, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build reply request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("reply request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		log.Printf("line: reply status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(msg)))
		return fmt.Errorf("line reply status %d", resp.StatusCode)
	}
	return nil
}
