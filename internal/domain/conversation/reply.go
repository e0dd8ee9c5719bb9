package conversation

// EventKind separates free-text messages from menu selections.
type EventKind int

const (
	EventText EventKind = iota
	EventSelection
)

// Event is one inbound webhook event, already stripped of transport
// details by the handler layer.
type Event struct {
	Kind   EventKind
	UserID string
	Text   string // EventText
	Code   string // EventSelection
}

func TextInput(userID, text string) Event {
	return Event{Kind: EventText, UserID: userID, Text: text}
}

func Selection(userID, code string) Event {
	return Event{Kind: EventSelection, UserID: userID, Code: code}
}

// Field names the intake step a prompt asks for. The presentation
// layer decides how each field is rendered (plain text vs menu).
type Field int

const (
	FieldModeSelect Field = iota
	FieldIntakeIntro
	FieldOrgName
	FieldRegion
	FieldDiscount
	FieldBudget
	FieldProduct
	FieldQuantity
	FieldPrintPosition
	FieldColorOption
)

type ReplyKind int

const (
	// ReplyPrompt asks the user for the next field.
	ReplyPrompt ReplyKind = iota
	// ReplyQuote is the final summary with the computed total.
	ReplyQuote
	// ReplyReject reports a recoverable input problem; the session is
	// unchanged and the user can retry.
	ReplyReject
	// ReplyEcho mirrors free text sent outside any intake.
	ReplyEcho
)

// Reply is the engine's single outbound instruction per event.
type Reply struct {
	Kind    ReplyKind
	Field   Field    // ReplyPrompt
	Choices []string // ReplyPrompt, selection codes when the field is a menu
	Summary Summary  // ReplyQuote
	Total   int64    // ReplyQuote
	Priced  bool     // ReplyQuote, false when no price row matched
	Reason  string   // ReplyReject
	Text    string   // ReplyEcho
}

// Summary is the eight captured intake fields, display-ready.
type Summary struct {
	OrgName       string
	Region        string
	Discount      string
	Budget        string
	Product       string
	Quantity      int
	PrintPosition string
	ColorOption   string
}

func prompt(field Field, choices ...string) Reply {
	return Reply{Kind: ReplyPrompt, Field: field, Choices: choices}
}

func reject(reason string) Reply {
	return Reply{Kind: ReplyReject, Reason: reason}
}
