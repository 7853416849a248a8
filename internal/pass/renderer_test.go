package pass

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func writeTestAssets(t *testing.T, templateWidth int, templateHeight int) (string, string) {
	t.Helper()
	dir := t.TempDir()

	templatePath := filepath.Join(dir, "template.jpg")
	template := imaging.New(templateWidth, templateHeight, color.NRGBA{R: 18, G: 32, B: 74, A: 255})
	require.NoError(t, imaging.Save(template, templatePath))

	fontPath := filepath.Join(dir, "font.ttf")
	require.NoError(t, os.WriteFile(fontPath, goregular.TTF, 0o644))

	return templatePath, fontPath
}

func sampleRequest() *PassRequest {
	return &PassRequest{
		TeamID:           "GT-2026-4496",
		TeamName:         "RoboWarriors",
		EventName:        "RoboRumble 2026",
		CollegeName:      "Granite Tech",
		ParticipantName:  "Kate Marlowe",
		ParticipantEmail: "kate@example.com",
		ParticipantPhone: "+15550100",
		PaymentStatus:    "verified",
	}
}

func TestRender_ProducesFixedCanvasJPEG(t *testing.T) {
	templatePath, fontPath := writeTestAssets(t, CanvasWidth, CanvasHeight)
	renderer, err := NewRenderer(templatePath, fontPath)
	require.NoError(t, err)

	data, err := renderer.Render(sampleRequest())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, CanvasWidth, decoded.Bounds().Dx())
	assert.Equal(t, CanvasHeight, decoded.Bounds().Dy())
}

// Template art is supplied by organizers; an off-size image must be fitted,
// not rejected and not allowed to change the output dimensions.
func TestRender_NormalizesOffSizeTemplate(t *testing.T) {
	templatePath, fontPath := writeTestAssets(t, 1200, 800)
	renderer, err := NewRenderer(templatePath, fontPath)
	require.NoError(t, err)

	data, err := renderer.Render(sampleRequest())
	require.NoError(t, err)

	decoded, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, CanvasWidth, decoded.Bounds().Dx())
	assert.Equal(t, CanvasHeight, decoded.Bounds().Dy())
}

// A payload too large for the QR symbol must degrade to a pass without a QR,
// never to a failed render.
func TestRender_OversizedQRPayloadStillRenders(t *testing.T) {
	templatePath, fontPath := writeTestAssets(t, CanvasWidth, CanvasHeight)
	renderer, err := NewRenderer(templatePath, fontPath)
	require.NoError(t, err)

	req := sampleRequest()
	req.CollegeName = strings.Repeat("x", 4000)

	data, err := renderer.Render(req)
	require.NoError(t, err)

	decoded, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, CanvasWidth, decoded.Bounds().Dx())
}

func TestRender_SkipsEmptyFields(t *testing.T) {
	templatePath, fontPath := writeTestAssets(t, CanvasWidth, CanvasHeight)
	renderer, err := NewRenderer(templatePath, fontPath)
	require.NoError(t, err)

	data, err := renderer.Render(&PassRequest{
		TeamID:           "GT-2026-4496",
		ParticipantName:  "Kate Marlowe",
		ParticipantEmail: "kate@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestNewRenderer_MissingAssets(t *testing.T) {
	templatePath, fontPath := writeTestAssets(t, CanvasWidth, CanvasHeight)

	t.Run("missing template", func(t *testing.T) {
		_, err := NewRenderer(filepath.Join(t.TempDir(), "absent.jpg"), fontPath)
		assert.Error(t, err)
	})

	t.Run("missing font", func(t *testing.T) {
		_, err := NewRenderer(templatePath, filepath.Join(t.TempDir(), "absent.ttf"))
		assert.Error(t, err)
	})

	t.Run("corrupt font", func(t *testing.T) {
		badFont := filepath.Join(t.TempDir(), "bad.ttf")
		require.NoError(t, os.WriteFile(badFont, []byte("not a font"), 0o644))
		_, err := NewRenderer(templatePath, badFont)
		assert.Error(t, err)
	})
}
