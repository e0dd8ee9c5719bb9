package quote

import (
	"time"

	"github.com/google/uuid"

	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/domain/conversation"
)

// Quote is a finished intake with its computed total, ready for
// rendering.
type Quote struct {
	Number    string
	CreatedAt time.Time

	OrgName       string
	Region        string
	Discount      string
	Budget        string
	Product       string
	Quantity      int
	PrintPosition string
	ColorOption   string

	Total  int64
	Priced bool
}

// NewNumber returns a short unique quote number like GF-1a2b3c4d.
func NewNumber() string {
	id := uuid.New().String()
	return "GF-" + id[:8]
}

// FromSummary builds a Quote from the engine's final reply.
func FromSummary(s conversation.Summary, total int64, priced bool) Quote {
	return Quote{
		Number:        NewNumber(),
		CreatedAt:     time.Now(),
		OrgName:       s.OrgName,
		Region:        s.Region,
		Discount:      s.Discount,
		Budget:        s.Budget,
		Product:       s.Product,
		Quantity:      s.Quantity,
		PrintPosition: s.PrintPosition,
		ColorOption:   s.ColorOption,
		Total:         total,
		Priced:        priced,
	}
}
