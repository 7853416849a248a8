package pass

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/skip2/go-qrcode"
)

// PassRequest carries everything printed on one participant's pass. Built by
// the orchestrator immediately before a render call and discarded after.
type PassRequest struct {
	TeamID           string
	TeamName         string
	EventName        string
	CollegeName      string
	ParticipantName  string
	ParticipantEmail string
	ParticipantPhone string
	PaymentStatus    string
}

// Field layout. All text is center-anchored on the canvas midline; the QR
// sits in a fixed square above the text block.
const (
	qrSize = 300
	qrX    = (CanvasWidth - qrSize) / 2
	qrY    = 296

	teamCodeSize = 44.0
	teamCodeY    = 688.0

	participantSize = 34.0
	participantY    = 756.0

	teamNameSize = 27.0
	teamNameY    = 814.0

	eventNameSize = 24.0
	eventNameY    = 866.0

	collegeSize = 20.0
	collegeY    = 914.0

	jpegQuality = 75
)

type Renderer struct {
	assets *assets
}

// NewRenderer loads the template and font. A missing or unreadable asset is a
// configuration error and must abort startup, never be deferred to render time.
func NewRenderer(templatePath string, fontPath string) (*Renderer, error) {
	loaded, err := openAssets(templatePath, fontPath)
	if err != nil {
		return nil, err
	}
	return &Renderer{assets: loaded}, nil
}

// Render composites one participant's pass onto the template and returns it
// as a JPEG. QR generation failure is non-fatal: the pass still renders, the
// scanner just has to fall back to manual lookup.
func (r *Renderer) Render(req *PassRequest) ([]byte, error) {
	dc := gg.NewContext(CanvasWidth, CanvasHeight)
	dc.DrawImage(r.assets.template, 0, 0)

	if err := r.drawQR(dc, req); err != nil {
		slog.Warn("Pass QR generation failed, rendering without QR",
			"team", req.TeamID,
			"participant", req.ParticipantName,
			"error", err)
	}

	r.drawField(dc, req.TeamID, teamCodeSize, teamCodeY)
	r.drawField(dc, req.ParticipantName, participantSize, participantY)
	r.drawField(dc, req.TeamName, teamNameSize, teamNameY)
	r.drawField(dc, req.EventName, eventNameSize, eventNameY)
	r.drawField(dc, req.CollegeName, collegeSize, collegeY)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, dc.Image(), imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode pass image: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *Renderer) drawQR(dc *gg.Context, req *PassRequest) error {
	payload, err := EncodePayload(req)
	if err != nil {
		return err
	}

	// Low error correction keeps the module grid coarse enough to stay
	// scannable at the fixed region size.
	code, err := qrcode.New(payload, qrcode.Low)
	if err != nil {
		return err
	}

	dc.DrawImage(code.Image(qrSize), qrX, qrY)
	return nil
}

// drawField draws one center-aligned line with the two-pass outline that
// keeps text legible against the template photo: a dark stroke, a wider
// semi-transparent glow, then the fill on top.
func (r *Renderer) drawField(dc *gg.Context, text string, points float64, y float64) {
	if text == "" {
		return
	}

	dc.SetFontFace(r.assets.face(points))
	x := float64(CanvasWidth) / 2

	dc.SetRGBA(0.04, 0.06, 0.12, 0.9)
	drawOffsetRing(dc, text, x, y, 2)

	dc.SetRGBA(0, 0, 0, 0.35)
	drawOffsetRing(dc, text, x, y, 4)

	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
}

// drawOffsetRing stamps the string at every integer offset within radius,
// producing a stroke of roughly that thickness around the glyphs.
func drawOffsetRing(dc *gg.Context, text string, x float64, y float64, radius int) {
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			dc.DrawStringAnchored(text, x+float64(dx), y+float64(dy), 0.5, 0.5)
		}
	}
}
