// Package pdftext extracts raw text from PDF documents. It is the only
// component aware of binary document structure; everything downstream
// consumes a plain text string.
package pdftext

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dslipak/pdf"
)

// ExtractReader returns the document text, one extracted row per line.
// Pages that fail row extraction are logged and skipped.
func ExtractReader(reader io.Reader) (string, error) {
	var rAt io.ReaderAt
	var size int64

	switch v := reader.(type) {
	case io.ReaderAt:
		rAt = v
		seeker, ok := reader.(io.Seeker)
		if !ok {
			return "", errors.New("reader is io.ReaderAt but not io.Seeker, cannot determine size")
		}
		cur, _ := seeker.Seek(0, io.SeekCurrent)
		end, _ := seeker.Seek(0, io.SeekEnd)
		seeker.Seek(cur, io.SeekStart)
		size = end
	default:
		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(reader); err != nil {
			return "", err
		}
		b := buf.Bytes()
		rAt = bytes.NewReader(b)
		size = int64(len(b))
	}

	r, err := pdf.NewReader(rAt, size)
	if err != nil {
		return "", err
	}

	numPages := r.NumPage()
	rows := make([]string, 0, numPages*100)

	for no := 1; no <= numPages; no++ {
		page := r.Page(no)
		pageRows, err := page.GetTextByRow()
		if err != nil {
			log.Printf("Warning: error getting text from page %d: %v", no, err)
			continue
		}

		for _, row := range pageRows {
			var builder strings.Builder
			for i, text := range row.Content {
				builder.WriteString(text.S)
				if i < len(row.Content)-1 {
					builder.WriteByte(' ')
				}
			}
			if builder.Len() > 0 {
				rows = append(rows, builder.String())
			}
		}
	}

	return strings.Join(rows, "\n"), nil
}

// Extract reads the PDF at path and returns its text.
func Extract(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return ExtractReader(file)
}
