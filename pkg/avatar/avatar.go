package avatar

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/aofei/cameron"
)

const (
	// Size is the edge length of generated avatar images in pixels
	Size = 200
	// blockSpacing controls the identicon grid padding
	blockSpacing = 20
)

// Generator renders deterministic identicon-style PNG avatars from a seed
// string. Equal seeds always produce equal images.
type Generator struct{}

// NewGenerator creates a new avatar Generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns the PNG bytes of the identicon derived from seed
func (g *Generator) Generate(seed string) ([]byte, error) {
	img := cameron.Identicon([]byte(seed), Size, blockSpacing)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode avatar png: %w", err)
	}
	return buf.Bytes(), nil
}
