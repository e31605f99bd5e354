// Package pdftext extracts plain text from PDF documents.
package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// ErrNotPDF indicates the uploaded bytes are not a parseable PDF.
var ErrNotPDF = errors.New("file is not a valid PDF")

// Extractor pulls plain text out of PDF bytes using ledongthuc/pdf.
// It implements match.PDFExtractor. The zero value is ready to use.
type Extractor struct{}

// NewExtractor creates a PDF text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the concatenated text content of every page in
// the document. The ctx is consulted between pages so a canceled
// request does not keep parsing a large document.
func (e *Extractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotPDF, err)
	}

	var text bytes.Buffer
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Pages with unsupported encodings are skipped; a resume
			// usually carries its text on well-formed pages.
			continue
		}
		if _, err := io.WriteString(&text, content); err != nil {
			return "", err
		}
		text.WriteByte('\n')
	}

	return text.String(), nil
}
