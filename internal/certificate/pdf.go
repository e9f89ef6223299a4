package certificate

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const rasterName = "certificate"

// newDocument creates a single-page landscape document of width x height points.
func newDocument(width, height float64) *fpdf.Fpdf {
	// Landscape swaps the custom size, so Wd carries the short side.
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: height, Ht: width},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf
}

// EncodePDF places a PNG raster over a full landscape page of width x height.
func EncodePDF(png []byte, width, height float64) ([]byte, error) {
	pdf := newDocument(width, height)

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(rasterName, opts, bytes.NewReader(png))
	pdf.ImageOptions(rasterName, 0, 0, width, height, false, opts, 0, "")
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("encode pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
