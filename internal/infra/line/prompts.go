package line

import "fmt"

// Prompt builders for each intake step, one Flex card per step.
// Labels are what the user sees; postback data is the selection code
// the engine recognizes.

func ModeSelectionFlex() FlexMessage {
	return flex("モードを選択してください", bubble("モードを選択してください!",
		postbackButton("簡易見積", "quick_estimate"),
		postbackButton("WEBフォームから注文", "web_order"),
		postbackButton("注文用紙から注文", "paper_order"),
	))
}

func IntakeIntroFlex() FlexMessage {
	intro := "簡易見積に必要な項目を順番に確認します。\n" +
		"1. 学校/団体名\n" +
		"2. お届け先(都道府県)\n" +
		"3. 早割確認\n" +
		"4. 1枚当たりの予算\n" +
		"5. 商品名\n" +
		"6. 枚数\n" +
		"7. プリント位置\n" +
		"8. 使用する色数"
	b := bubble(intro, postbackButton("入力を開始する", "start_quick_estimate_input"))
	// Intro body is plain, not bold.
	b.Body.Contents = []interface{}{FlexText{Type: "text", Text: intro, Wrap: true}}
	return flex("簡易見積モードへようこそ", b)
}

func EarlyDiscountFlex() FlexMessage {
	return flex("早割確認", bubble("使用日から14日前以上 or 14日前以内を選択してください。",
		postbackButton("14日前以上", "14days_plus"),
		postbackButton("14日前以内", "14days_minus"),
	))
}

// ProductCarouselFlex splits the catalog across bubbles of at most
// seven buttons, the Flex footer limit we render with.
func ProductCarouselFlex(catalog []string) FlexMessage {
	const perBubble = 7
	var bubbles []Bubble
	for start := 0; start < len(catalog); start += perBubble {
		end := start + perBubble
		if end > len(catalog) {
			end = len(catalog)
		}
		var buttons []Button
		for _, name := range catalog[start:end] {
			buttons = append(buttons, postbackButton(name, name))
		}
		page := len(bubbles) + 1
		total := (len(catalog) + perBubble - 1) / perBubble
		bubbles = append(bubbles, bubble(
			pageTitle("商品を選択してください", page, total), buttons...))
	}
	return flex("商品を選択してください", Carousel{Type: "carousel", Contents: bubbles})
}

func pageTitle(title string, page, total int) string {
	if total <= 1 {
		return title
	}
	return fmt.Sprintf("%s(%d/%d)", title, page, total)
}

func PrintPositionFlex() FlexMessage {
	return flex("プリント位置選択", bubble("プリントする位置を選択してください",
		postbackButton("前", "front"),
		postbackButton("背中", "back"),
		postbackButton("前と背中", "front_back"),
	))
}

func ColorOptionsFlex() FlexMessage {
	b := bubble("使用する色数(前・背中)を選択してください",
		postbackButton("同じ位置にプリントカラー追加", "same_color_add"),
		postbackButton("別の場所にプリント位置追加", "different_color_add"),
		postbackButton("フルカラーに追加", "full_color_add"),
	)
	return flex("使用する色数を選択", b)
}
