package pass

import (
	"fmt"
	"image"
	"os"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// Canvas geometry. The template artwork is authored against these exact
// pixel dimensions; every field coordinate in renderer.go assumes them.
const (
	CanvasWidth  = 591
	CanvasHeight = 1004
)

// assets holds the template image and parsed font. Both are read-only after
// load and shared across concurrent renders; loading happens once per path
// pair for the lifetime of the process.
type assets struct {
	template image.Image
	font     *truetype.Font
}

var (
	assetsMu    sync.Mutex
	assetsCache = make(map[string]*assets)
)

func openAssets(templatePath string, fontPath string) (*assets, error) {
	key := templatePath + "\x00" + fontPath

	assetsMu.Lock()
	defer assetsMu.Unlock()

	if cached, ok := assetsCache[key]; ok {
		return cached, nil
	}

	loaded, err := loadAssets(templatePath, fontPath)
	if err != nil {
		return nil, err
	}

	assetsCache[key] = loaded
	return loaded, nil
}

func loadAssets(templatePath string, fontPath string) (*assets, error) {
	template, err := imaging.Open(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load pass template %s: %w", templatePath, err)
	}

	// Normalize the template to the canvas size once so renders only composite.
	if bounds := template.Bounds(); bounds.Dx() != CanvasWidth || bounds.Dy() != CanvasHeight {
		template = imaging.Fill(template, CanvasWidth, CanvasHeight, imaging.Center, imaging.Lanczos)
	}

	raw, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load pass font %s: %w", fontPath, err)
	}

	parsed, err := truetype.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pass font %s: %w", fontPath, err)
	}

	return &assets{template: template, font: parsed}, nil
}

// face returns a freshly sized face. Faces carry an internal glyph cache that
// is not safe for concurrent use, so each render call gets its own.
func (a *assets) face(points float64) font.Face {
	return truetype.NewFace(a.font, &truetype.Options{Size: points})
}
