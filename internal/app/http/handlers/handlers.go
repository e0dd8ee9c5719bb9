package handlers

import (
	"net/http"
	"time"

	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/app/config"
	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/domain/conversation"
	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/domain/pricing"
	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/domain/quote/pdf"
	pdfgen "github.com/PSAN1987/graffitiees-LINE-BOT/internal/domain/quote/pdf/gofpdf"
	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/infra/line"
)

type Handlers struct {
	Cfg    config.Config
	Engine *conversation.Engine
	Table  *pricing.Table
	Line   *line.Client
	PDF    pdf.Generator
}

func New(cfg config.Config, engine *conversation.Engine, table *pricing.Table) *Handlers {
	httpClient := &http.Client{Timeout: 15 * time.Second}
	return &Handlers{
		Cfg:    cfg,
		Engine: engine,
		Table:  table,
		Line:   line.NewClient(cfg.LineBaseURL, cfg.ChannelAccessToken, httpClient),
		PDF:    pdfgen.New(),
	}
}
