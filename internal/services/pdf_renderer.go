package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFDocument is a rendered PDF held in memory.
type PDFDocument struct {
	data []byte
}

func (d *PDFDocument) Bytes() []byte {
	return d.data
}

// WkhtmltopdfRenderer converts HTML into PDF by driving the wkhtmltopdf
// binary through temp files.
type WkhtmltopdfRenderer struct {
	binaryPath string
}

func NewWkhtmltopdfRenderer() *WkhtmltopdfRenderer {
	return &WkhtmltopdfRenderer{binaryPath: "wkhtmltopdf"}
}

func (r *WkhtmltopdfRenderer) RenderFromHTML(ctx context.Context, html string, opts RenderOptions) (Document, error) {
	inputFile, err := os.CreateTemp("", "report_input_*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp input file: %w", err)
	}
	defer os.Remove(inputFile.Name())
	defer inputFile.Close()

	outputFile, err := os.CreateTemp("", "report_output_*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp output file: %w", err)
	}
	defer os.Remove(outputFile.Name())
	outputFile.Close()

	if _, err := inputFile.WriteString(html); err != nil {
		return nil, fmt.Errorf("failed to write HTML to temp file: %w", err)
	}
	inputFile.Close()

	args := []string{"--quiet", "--encoding", "utf-8"}

	if opts.PageNumbering == PageNumberingNumeric {
		args = append(args, "--footer-center", "[page]")
	}

	var headerFile *os.File
	if opts.HeaderHTML != "" {
		headerFile, err = os.CreateTemp("", "report_header_*.html")
		if err != nil {
			return nil, fmt.Errorf("failed to create temp header file: %w", err)
		}
		defer os.Remove(headerFile.Name())

		if _, err := headerFile.WriteString(headerDocument(opts)); err != nil {
			headerFile.Close()
			return nil, fmt.Errorf("failed to write header file: %w", err)
		}
		headerFile.Close()

		args = append(args, "--header-html", headerFile.Name())
	}

	args = append(args, inputFile.Name(), outputFile.Name())

	cmd := exec.CommandContext(ctx, r.binaryPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("wkhtmltopdf failed: %w, stderr: %s", err, stderr.String())
	}

	pdfData, err := os.ReadFile(outputFile.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to read rendered PDF: %w", err)
	}

	if err := validatePDF(pdfData); err != nil {
		return nil, err
	}

	slog.Info("Rendered PDF document", "size_bytes", len(pdfData))
	return &PDFDocument{data: pdfData}, nil
}

// headerDocument wraps the fixed header markup in a standalone HTML page for
// wkhtmltopdf. wkhtmltopdf repeats headers on every page; when the options
// ask for a first-page-only header, the page number it passes as a query
// parameter is used to blank the header on subsequent pages.
func headerDocument(opts RenderOptions) string {
	firstPageScript := ""
	if opts.HeaderFirstPageOnly {
		firstPageScript = `<script>
	var page = new URLSearchParams(window.location.search).get("page");
	if (page !== "1") { document.body.innerHTML = ""; }
</script>`
	}

	return `<!DOCTYPE html>
<html>
<body>
` + opts.HeaderHTML + `
` + firstPageScript + `
</body>
</html>`
}

// validatePDF rejects output that is not a structurally valid PDF before it
// is handed back to the caller.
func validatePDF(data []byte) error {
	if !isPDF(data) {
		return errors.New("rendered output is not a PDF")
	}

	if err := api.Validate(bytes.NewReader(data), model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("rendered PDF failed validation: %w", err)
	}

	return nil
}

// isPDF checks if data starts with PDF magic bytes
func isPDF(data []byte) bool {
	return len(data) > 4 && string(data[:4]) == "%PDF"
}
