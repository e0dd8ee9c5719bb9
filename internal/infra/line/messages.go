package line

// Message is any LINE outbound message object.
type Message interface{ message() }

type TextMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (TextMessage) message() {}

func Text(text string) TextMessage {
	return TextMessage{Type: "text", Text: text}
}

type FlexMessage struct {
	Type     string      `json:"type"`
	AltText  string      `json:"altText"`
	Contents interface{} `json:"contents"`
}

func (FlexMessage) message() {}

// Flex container/component objects, serialized as-is.

type Bubble struct {
	Type   string `json:"type"`
	Body   *Box   `json:"body,omitempty"`
	Footer *Box   `json:"footer,omitempty"`
}

type Carousel struct {
	Type     string   `json:"type"`
	Contents []Bubble `json:"contents"`
}

type Box struct {
	Type     string        `json:"type"`
	Layout   string        `json:"layout"`
	Contents []interface{} `json:"contents"`
}

type FlexText struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	Weight string `json:"weight,omitempty"`
	Size   string `json:"size,omitempty"`
	Wrap   bool   `json:"wrap,omitempty"`
}

type Button struct {
	Type   string         `json:"type"`
	Style  string         `json:"style,omitempty"`
	Action PostbackAction `json:"action"`
}

type PostbackAction struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Data  string `json:"data"`
}

func postbackButton(label, data string) Button {
	return Button{
		Type:  "button",
		Style: "primary",
		Action: PostbackAction{Type: "postback", Label: label, Data: data},
	}
}

func bubble(bodyText string, buttons ...Button) Bubble {
	footer := make([]interface{}, 0, len(buttons))
	for _, b := range buttons {
		footer = append(footer, b)
	}
	return Bubble{
		Type: "bubble",
		Body: &Box{
			Type:   "box",
			Layout: "vertical",
			Contents: []interface{}{
				FlexText{Type: "text", Text: bodyText, Weight: "bold", Size: "md", Wrap: true},
			},
		},
		Footer: &Box{Type: "box", Layout: "vertical", Contents: footer},
	}
}

func flex(altText string, contents interface{}) FlexMessage {
	return FlexMessage{Type: "flex", AltText: altText, Contents: contents}
}
