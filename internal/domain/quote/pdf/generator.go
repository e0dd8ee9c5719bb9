package pdf

import "github.com/PSAN1987/graffitiees-LINE-BOT/internal/domain/quote"

type Generator interface {
	Generate(q quote.Quote) ([]byte, error)
}
