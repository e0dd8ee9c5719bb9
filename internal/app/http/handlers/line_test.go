package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/app/config"
	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/domain/conversation"
	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/domain/pricing"
)

const testChannelSecret = "test-channel-secret"

// fakeLineAPI records reply payloads the handler sends out.
type fakeLineAPI struct {
	mu      sync.Mutex
	replies []map[string]interface{}
}

func (f *fakeLineAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var payload map[string]interface{}
		_ = json.Unmarshal(raw, &payload)
		f.mu.Lock()
		f.replies = append(f.replies, payload)
		f.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
}

func (f *fakeLineAPI) last(t *testing.T) map[string]interface{} {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.replies)
	return f.replies[len(f.replies)-1]
}

func newTestHandlers(t *testing.T) (*Handlers, *fakeLineAPI) {
	t.Helper()
	api := &fakeLineAPI{}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	cfg := config.Config{
		ChannelSecret:      testChannelSecret,
		ChannelAccessToken: "test-token",
		LineBaseURL:        srv.URL,
	}
	store := conversation.NewStore()
	engine := conversation.NewEngine(store, pricing.DefaultTable())
	return New(cfg, engine, pricing.DefaultTable()), api
}

func signBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testChannelSecret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func postWebhook(t *testing.T, h *Handlers, body []byte, signature string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/callback", bytes.NewReader(body))
	req.Header.Set("X-Line-Signature", signature)
	rec := httptest.NewRecorder()
	h.LineWebhook(rec, req)
	return rec
}

func textEventBody(userID, text string) []byte {
	return []byte(`{"events":[{"type":"message","replyToken":"rt-1","source":{"userId":"` + userID + `"},"message":{"type":"text","text":"` + text + `"}}]}`)
}

func postbackEventBody(userID, data string) []byte {
	return []byte(`{"events":[{"type":"postback","replyToken":"rt-1","source":{"userId":"` + userID + `"},"postback":{"data":"` + data + `"}}]}`)
}

func TestLineWebhookRejectsBadSignature(t *testing.T) {
	h, api := newTestHandlers(t)
	body := textEventBody("U1", "モード選択")

	rec := postWebhook(t, h, body, "not-a-mac")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, api.replies)
}

func TestLineWebhookModeKeyword(t *testing.T) {
	h, api := newTestHandlers(t)
	body := textEventBody("U1", "モード選択")

	rec := postWebhook(t, h, body, signBody(body))
	assert.Equal(t, http.StatusOK, rec.Code)

	reply := api.last(t)
	assert.Equal(t, "rt-1", reply["replyToken"])
	raw, _ := json.Marshal(reply["messages"])
	assert.Contains(t, string(raw), "quick_estimate")
}

func TestLineWebhookFullIntake(t *testing.T) {
	h, api := newTestHandlers(t)

	steps := [][]byte{
		postbackEventBody("U1", "start_quick_estimate_input"),
		textEventBody("U1", "県立グラフィティ高校"),
		textEventBody("U1", "東京都"),
		postbackEventBody("U1", "14days_plus"),
		textEventBody("U1", "1500"),
		postbackEventBody("U1", "ドライTシャツ"),
		textEventBody("U1", "20"),
		postbackEventBody("U1", "front"),
		postbackEventBody("U1", "same_color_add"),
	}
	for i, body := range steps {
		rec := postWebhook(t, h, body, signBody(body))
		require.Equal(t, http.StatusOK, rec.Code, "step %d", i)
	}

	reply := api.last(t)
	raw, _ := json.Marshal(reply["messages"])
	assert.Contains(t, string(raw), "合計金額: ¥33,600")
	assert.Contains(t, string(raw), "県立グラフィティ高校")

	// Session is gone: a fresh mid-flow postback is rejected.
	body := postbackEventBody("U1", "14days_plus")
	postWebhook(t, h, body, signBody(body))
	raw, _ = json.Marshal(api.last(t)["messages"])
	assert.Contains(t, string(raw), "簡易見積モードではありません")
}

func TestLineWebhookInvalidQuantityReprompts(t *testing.T) {
	h, api := newTestHandlers(t)
	steps := [][]byte{
		postbackEventBody("U1", "start_quick_estimate_input"),
		textEventBody("U1", "org"),
		textEventBody("U1", "region"),
		postbackEventBody("U1", "14days_minus"),
		textEventBody("U1", "800"),
		postbackEventBody("U1", "ドライTシャツ"),
		textEventBody("U1", "abc"),
	}
	for _, body := range steps {
		postWebhook(t, h, body, signBody(body))
	}
	raw, _ := json.Marshal(api.last(t)["messages"])
	assert.Contains(t, string(raw), "正の整数")
}

func TestLineWebhookIgnoresNonTextEvents(t *testing.T) {
	h, api := newTestHandlers(t)
	body := []byte(`{"events":[{"type":"message","replyToken":"rt-1","source":{"userId":"U1"},"message":{"type":"sticker"}}]}`)
	rec := postWebhook(t, h, body, signBody(body))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, api.replies)
}

func TestFormatQuoteUnpriced(t *testing.T) {
	text := formatQuote(conversation.Reply{
		Kind:    conversation.ReplyQuote,
		Summary: conversation.Summary{Product: "ドライポロシャツ", Quantity: 3},
		Total:   0,
		Priced:  false,
	})
	assert.Contains(t, text, "合計金額: ¥0")
	assert.Contains(t, text, "該当がない")
}

func TestGroupDigits(t *testing.T) {
	tests := map[int64]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		33600:   "33,600",
		1234567: "1,234,567",
	}
	for n, want := range tests {
		assert.Equal(t, want, groupDigits(n))
	}
}
