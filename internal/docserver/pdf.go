package docserver

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"fmt"
	"os/exec"
)

// PDFGenerator turns a rendered HTML file into a PDF.
type PDFGenerator interface {
	Generate(ctx context.Context, htmlPath, pdfPath string) error
}

// WKHTMLToPDF shells out to the wkhtmltopdf binary.
type WKHTMLToPDF struct {
	binary string
}

// NewWKHTMLToPDF returns a generator using the given binary, defaulting to
// wkhtmltopdf on PATH.
func NewWKHTMLToPDF(binary string) *WKHTMLToPDF {
	if binary == "" {
		binary = "wkhtmltopdf"
	}
	return &WKHTMLToPDF{binary: binary}
}

// Generate renders htmlPath into pdfPath.
func (g *WKHTMLToPDF) Generate(ctx context.Context, htmlPath, pdfPath string) error {
	cmd := exec.CommandContext(ctx, g.binary, "--quiet", "--enable-local-file-access", htmlPath, pdfPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("wkhtmltopdf %s: %w: %s", htmlPath, err, out)
	}
	return nil
}
