package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/domain/conversation"
	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/domain/pricing"
	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/domain/quote"
)

type CreateQuoteRequest struct {
	OrgName       string `json:"org_name"`
	Region        string `json:"region"`
	EarlyDiscount bool   `json:"early_discount"`
	Budget        string `json:"budget"`
	Product       string `json:"product"`
	Quantity      int    `json:"quantity"`
	PrintPosition string `json:"print_position"`
	ColorOption   string `json:"color_option"`
}

// CreateQuote prices a captured intake and returns the quote as a PDF.
// Internal endpoint for staff tooling; the bot flow itself replies in
// chat.
func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if req.Quantity <= 0 {
		http.Error(w, "quantity must be > 0", http.StatusBadRequest)
		return
	}
	if !pricing.InCatalog(req.Product) {
		http.Error(w, "unknown product", http.StatusBadRequest)
		return
	}

	pos := pricing.PrintPosition(req.PrintPosition)
	opt := pricing.ColorOption(req.ColorOption)
	res := h.Table.Quote(req.Product, req.Quantity, req.EarlyDiscount, pos, opt)

	q := quote.FromSummary(conversation.Summary{
		OrgName:       req.OrgName,
		Region:        req.Region,
		Discount:      conversation.DiscountLabel(req.EarlyDiscount),
		Budget:        req.Budget,
		Product:       req.Product,
		Quantity:      req.Quantity,
		PrintPosition: conversation.PositionLabel(pos),
		ColorOption:   conversation.ColorLabel(opt),
	}, res.Total, res.Priced)

	pdfBytes, err := h.PDF.Generate(q)
	if err != nil {
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", q.Number+".pdf"))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
