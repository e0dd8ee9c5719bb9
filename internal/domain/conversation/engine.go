package conversation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/domain/pricing"
)

// Selection codes outside the intake chain.
const (
	KeywordModeSelect = "モード選択"
	CodeQuickEstimate = "quick_estimate"
	CodeWebOrder      = "web_order"
	CodePaperOrder    = "paper_order"
	CodeStartIntake   = "start_quick_estimate_input"

	CodeDiscountPlus  = "14days_plus"
	CodeDiscountMinus = "14days_minus"
)

// Display labels for the quote summary.
var (
	discountLabels = map[bool]string{true: "14日前以上", false: "14日前以内"}

	positionLabels = map[pricing.PrintPosition]string{
		pricing.PositionFront:     "前",
		pricing.PositionBack:      "背中",
		pricing.PositionFrontBack: "前と背中",
	}

	colorLabels = map[pricing.ColorOption]string{
		pricing.ColorSamePosition:  "同じ位置にプリントカラー追加",
		pricing.ColorExtraPosition: "別の場所にプリント位置追加",
		pricing.ColorFull:          "フルカラーに追加",
	}
)

// Engine drives the intake state machine: one inbound event in, one
// reply out. The whole lookup-validate-mutate-delete sequence for a
// user runs inside the store's critical section.
type Engine struct {
	store *Store
	table *pricing.Table
	now   func() time.Time
}

func NewEngine(store *Store, table *pricing.Table) *Engine {
	return &Engine{store: store, table: table, now: time.Now}
}

func (e *Engine) Handle(ev Event) Reply {
	switch ev.Kind {
	case EventText:
		return e.handleText(ev)
	case EventSelection:
		return e.handleSelection(ev)
	default:
		return reject(fmt.Sprintf("不明なイベント種別です: %d", ev.Kind))
	}
}

func (e *Engine) handleText(ev Event) Reply {
	text := strings.TrimSpace(ev.Text)

	// Mode keyword works from any state and consumes nothing.
	if text == KeywordModeSelect {
		return prompt(FieldModeSelect, CodeQuickEstimate, CodeWebOrder, CodePaperOrder)
	}

	var reply Reply
	e.store.Do(ev.UserID, func(s *Session) bool {
		if s == nil {
			reply = Reply{Kind: ReplyEcho, Text: ev.Text}
			return false
		}

		switch s.State {
		case StateAwaitOrgName:
			s.OrgName = text
			return e.advance(s, StateAwaitRegion, &reply, prompt(FieldRegion))
		case StateAwaitRegion:
			s.Region = text
			return e.advance(s, StateAwaitDiscount, &reply,
				prompt(FieldDiscount, CodeDiscountPlus, CodeDiscountMinus))
		case StateAwaitBudget:
			s.Budget = text
			return e.advance(s, StateAwaitProduct, &reply,
				prompt(FieldProduct, pricing.Catalog...))
		case StateAwaitQuantity:
			qty, err := strconv.Atoi(text)
			if err != nil || qty <= 0 {
				reply = reject("枚数は正の整数で入力してください。")
				return false
			}
			s.Quantity = qty
			return e.advance(s, StateAwaitPrintPosition, &reply,
				prompt(FieldPrintPosition,
					string(pricing.PositionFront),
					string(pricing.PositionBack),
					string(pricing.PositionFrontBack)))
		default:
			reply = reject(fmt.Sprintf("現在の状態(%s)でテキスト入力は想定外です。", s.State))
			return false
		}
	})
	return reply
}

func (e *Engine) handleSelection(ev Event) Reply {
	switch ev.Code {
	case CodeQuickEstimate:
		// Intro card; the session starts only on the begin button.
		return prompt(FieldIntakeIntro, CodeStartIntake)
	case CodeStartIntake:
		e.store.Begin(ev.UserID)
		return prompt(FieldOrgName)
	}

	var reply Reply
	e.store.Do(ev.UserID, func(s *Session) bool {
		if s == nil {
			reply = reject("簡易見積モードではありません。")
			return false
		}

		switch s.State {
		case StateAwaitDiscount:
			switch ev.Code {
			case CodeDiscountPlus:
				s.DiscountEligible = true
			case CodeDiscountMinus:
				s.DiscountEligible = false
			default:
				reply = reject("早割選択が不明です。")
				return false
			}
			return e.advance(s, StateAwaitBudget, &reply, prompt(FieldBudget))

		case StateAwaitProduct:
			if !pricing.InCatalog(ev.Code) {
				reply = reject("商品の選択が不明です。")
				return false
			}
			s.Product = ev.Code
			return e.advance(s, StateAwaitQuantity, &reply, prompt(FieldQuantity))

		case StateAwaitPrintPosition:
			pos := pricing.PrintPosition(ev.Code)
			if _, ok := positionLabels[pos]; !ok {
				reply = reject("プリント位置の指定が不明です。")
				return false
			}
			s.PrintPosition = pos
			return e.advance(s, StateAwaitColorOption, &reply,
				prompt(FieldColorOption,
					string(pricing.ColorSamePosition),
					string(pricing.ColorExtraPosition),
					string(pricing.ColorFull)))

		case StateAwaitColorOption:
			opt := pricing.ColorOption(ev.Code)
			if _, ok := colorLabels[opt]; !ok {
				reply = reject("色数の選択が不明です。")
				return false
			}
			s.ColorOption = opt

			res := e.table.Quote(s.Product, s.Quantity, s.DiscountEligible, s.PrintPosition, s.ColorOption)
			reply = Reply{
				Kind:    ReplyQuote,
				Summary: summarize(s),
				Total:   res.Total,
				Priced:  res.Priced,
			}
			// Intake complete: drop the session.
			return true

		default:
			reply = reject(fmt.Sprintf("不明なアクション: %s", ev.Code))
			return false
		}
	})
	return reply
}

// advance commits a successful field write: successor state, activity
// timestamp, next prompt. Never deletes the session.
func (e *Engine) advance(s *Session, next State, out *Reply, p Reply) bool {
	s.State = next
	s.LastActivity = e.now()
	*out = p
	return false
}

func summarize(s *Session) Summary {
	return Summary{
		OrgName:       s.OrgName,
		Region:        s.Region,
		Discount:      DiscountLabel(s.DiscountEligible),
		Budget:        s.Budget,
		Product:       s.Product,
		Quantity:      s.Quantity,
		PrintPosition: PositionLabel(s.PrintPosition),
		ColorOption:   ColorLabel(s.ColorOption),
	}
}

// DiscountLabel is the display form of the lead-time selection.
func DiscountLabel(early bool) string { return discountLabels[early] }

// PositionLabel is the display form of a print position code, empty
// for an unknown code.
func PositionLabel(p pricing.PrintPosition) string { return positionLabels[p] }

// ColorLabel is the display form of a color option code, empty for an
// unknown code.
func ColorLabel(o pricing.ColorOption) string { return colorLabels[o] }
