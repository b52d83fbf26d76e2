package render

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/hbmartin/deal-deck-generator/internal/card"
	"github.com/hbmartin/deal-deck-generator/internal/tokens"
	ddgerrors "github.com/hbmartin/deal-deck-generator/pkg/errors"
)

// Format selects the output image encoding. PNG is the lossless default;
// JPEG is the lossy alternative.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

const jpegQuality = 90

// ParseFormat resolves a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "png", "":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("unsupported image format: %s", name)
	}
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return "png"
}

// Card renders a card onto a fresh canvas, selecting the template by the
// card's variant. The switch is closed over the five variants; only a card
// type from outside this module can reach the default branch.
func Card(c card.Card, ts *tokens.Store) (*Canvas, error) {
	switch v := c.(type) {
	case *card.PropertyCard:
		return renderProperty(v, ts)
	case *card.ActionCard:
		return renderAction(v, ts)
	case *card.MoneyCard:
		return renderMoney(v, ts)
	case *card.RentCard:
		return renderRent(v, ts)
	case *card.WildcardCard:
		return renderWildcard(v, ts)
	default:
		return nil, ddgerrors.NewUnsupportedCardTypeError(string(c.Kind()))
	}
}

// CardToFile renders a card and writes the encoded image to path, creating
// parent directories as needed. The image is encoded in memory first so a
// failed card never leaves a partial file on disk.
func CardToFile(c card.Card, ts *tokens.Store, path string, format Format) (*Canvas, error) {
	canvas, err := Card(c, ts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch format {
	case FormatJPEG:
		err = jpeg.Encode(&buf, canvas.Image(), &jpeg.Options{Quality: jpegQuality})
	default:
		err = png.Encode(&buf, canvas.Image())
	}
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return nil, err
	}
	return canvas, nil
}
