package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/domain/conversation"
	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/domain/pricing"
	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/infra/line"
)

type lineWebhookBody struct {
	Destination string      `json:"destination,omitempty"`
	Events      []lineEvent `json:"events"`
}

type lineEvent struct {
	Type       string        `json:"type"`
	ReplyToken string        `json:"replyToken,omitempty"`
	Source     lineSource    `json:"source"`
	Message    *lineMessage  `json:"message,omitempty"`
	Postback   *linePostback `json:"postback,omitempty"`
}

type lineSource struct {
	UserID string `json:"userId"`
}

type lineMessage struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type linePostback struct {
	Data string `json:"data"`
}

// LineWebhook verifies the signature and feeds each event through the
// conversation engine, replying with the engine's instruction.
func (h *Handlers) LineWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	signature := r.Header.Get("X-Line-Signature")
	if !line.ValidateSignature(h.Cfg.ChannelSecret, body, signature) {
		log.Printf("line: invalid signature len=%d", len(body))
		http.Error(w, "invalid signature", http.StatusBadRequest)
		return
	}

	var payload lineWebhookBody
	if err := json.Unmarshal(body, &payload); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	for _, ev := range payload.Events {
		h.handleLineEvent(r.Context(), ev)
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) handleLineEvent(ctx context.Context, ev lineEvent) {
	userID := ev.Source.UserID
	if userID == "" || ev.ReplyToken == "" {
		return
	}

	var in conversation.Event
	switch {
	case ev.Type == "message" && ev.Message != nil && ev.Message.Type == "text":
		log.Printf("line: text received user_id=%s len=%d", userID, len(ev.Message.Text))
		in = conversation.TextInput(userID, ev.Message.Text)
	case ev.Type == "postback" && ev.Postback != nil:
		log.Printf("line: postback received user_id=%s data=%s", userID, ev.Postback.Data)
		in = conversation.Selection(userID, ev.Postback.Data)
	default:
		log.Printf("line: event ignored type=%s user_id=%s", ev.Type, userID)
		return
	}

	reply := h.Engine.Handle(in)
	msgs := renderReply(reply)
	if len(msgs) == 0 {
		return
	}
	if err := h.Line.Reply(ctx, ev.ReplyToken, msgs...); err != nil {
		log.Printf("line: reply failed user_id=%s err=%v", userID, err)
	}
}

// renderReply turns an engine instruction into LINE messages.
func renderReply(reply conversation.Reply) []line.Message {
	switch reply.Kind {
	case conversation.ReplyPrompt:
		return []line.Message{renderPrompt(reply)}
	case conversation.ReplyQuote:
		return []line.Message{line.Text(formatQuote(reply))}
	case conversation.ReplyReject:
		return []line.Message{line.Text(reply.Reason)}
	case conversation.ReplyEcho:
		return []line.Message{line.Text("あなたのメッセージ: " + reply.Text)}
	default:
		return nil
	}
}

func renderPrompt(reply conversation.Reply) line.Message {
	switch reply.Field {
	case conversation.FieldModeSelect:
		return line.ModeSelectionFlex()
	case conversation.FieldIntakeIntro:
		return line.IntakeIntroFlex()
	case conversation.FieldOrgName:
		return line.Text("まずは学校または団体名を入力してください。")
	case conversation.FieldRegion:
		return line.Text("学校名を保存しました。\n次にお届け先(都道府県)を入力してください。")
	case conversation.FieldDiscount:
		return line.EarlyDiscountFlex()
	case conversation.FieldBudget:
		return line.Text("早割を保存しました。\n1枚あたりの予算を入力してください。")
	case conversation.FieldProduct:
		return line.ProductCarouselFlex(pricing.Catalog)
	case conversation.FieldQuantity:
		return line.Text("商品を保存しました。\n枚数を入力してください。")
	case conversation.FieldPrintPosition:
		return line.PrintPositionFlex()
	case conversation.FieldColorOption:
		return line.ColorOptionsFlex()
	default:
		return line.Text("次の項目を入力してください。")
	}
}

func formatQuote(reply conversation.Reply) string {
	s := reply.Summary
	var b strings.Builder
	b.WriteString("全項目の入力が完了しました。\n\n")
	fmt.Fprintf(&b, "学校/団体名: %s\n", s.OrgName)
	fmt.Fprintf(&b, "都道府県: %s\n", s.Region)
	fmt.Fprintf(&b, "早割確認: %s\n", s.Discount)
	fmt.Fprintf(&b, "予算: %s\n", s.Budget)
	fmt.Fprintf(&b, "商品名: %s\n", s.Product)
	fmt.Fprintf(&b, "枚数: %d\n", s.Quantity)
	fmt.Fprintf(&b, "プリント位置: %s\n", s.PrintPosition)
	fmt.Fprintf(&b, "使用する色数: %s\n", s.ColorOption)
	b.WriteString("\n--- 見積計算結果 ---\n")
	if reply.Priced {
		fmt.Fprintf(&b, "合計金額: ¥%s\n", groupDigits(reply.Total))
		b.WriteString("（概算です。詳細は別途ご相談ください）")
	} else {
		b.WriteString("合計金額: ¥0\n")
		b.WriteString("（価格表に該当がないため概算できません。別途ご相談ください）")
	}
	return b.String()
}

// groupDigits renders 33600 as 33,600.
func groupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
