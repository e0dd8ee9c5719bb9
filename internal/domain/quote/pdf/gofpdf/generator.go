package gofpdf

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/domain/quote"
)

type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(q quote.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("お見積書", false)
	regularFont := "internal/domain/quote/pdf/gofpdf/fonts/NotoSansJP-Regular.ttf"
	boldFont := "internal/domain/quote/pdf/gofpdf/fonts/NotoSansJP-Bold.ttf"
	log.Printf("quote pdf: load fonts regular=%s bold=%s", regularFont, boldFont)
	pdf.AddUTF8Font("NotoSansJP", "", regularFont)
	pdf.AddUTF8Font("NotoSansJP", "B", boldFont)
	if err := pdf.Error(); err != nil {
		return nil, err
	}
	pdf.AddPage()

	pdf.SetFont("NotoSansJP", "B", 16)
	pdf.Cell(0, 10, "お見積書（概算）")
	pdf.Ln(8)

	pdf.SetFont("NotoSansJP", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("№ %s / %s", q.Number, q.CreatedAt.Format("2006.01.02")))
	pdf.Ln(8)

	pdf.SetFont("NotoSansJP", "", 10)
	rows := [][2]string{
		{"学校/団体名", q.OrgName},
		{"都道府県", q.Region},
		{"早割確認", q.Discount},
		{"予算", q.Budget},
		{"商品名", q.Product},
		{"枚数", fmt.Sprintf("%d", q.Quantity)},
		{"プリント位置", q.PrintPosition},
		{"使用する色数", q.ColorOption},
	}
	for _, row := range rows {
		pdf.SetFont("NotoSansJP", "B", 10)
		pdf.Cell(50, 6, row[0])
		pdf.SetFont("NotoSansJP", "", 10)
		pdf.Cell(0, 6, trim(row[1], 60))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("NotoSansJP", "B", 12)
	if q.Priced {
		pdf.Cell(0, 7, fmt.Sprintf("合計金額: ¥%d", q.Total))
	} else {
		pdf.Cell(0, 7, "合計金額: 要お見積り（価格表に該当なし）")
	}
	pdf.Ln(8)

	pdf.SetFont("NotoSansJP", "", 9)
	pdf.Cell(0, 5, "グラフィティーズ • オリジナルプリント")
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("作成: %s", time.Now().Format(time.RFC3339)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("quote pdf: output failed: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
