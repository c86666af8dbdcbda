package services

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/richardlehane/mscfb"

	"lingua/pkg/utils"
)

// IsAllowedUploadType reports whether the chat endpoint accepts a file with this MIME type.
func IsAllowedUploadType(mimeType string) bool {
	mediaType, _, _ := strings.Cut(strings.ToLower(mimeType), ";")
	switch strings.TrimSpace(mediaType) {
	case "application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"text/plain":
		return true
	}
	return false
}

type DocumentServiceInterface interface {
	// ExtractText reads the file at path as fileType (pdf, doc, docx or txt, no dot).
	ExtractText(path, fileType string) (string, error)
}

type DocumentService struct{}

func NewDocumentService() DocumentServiceInterface {
	return &DocumentService{}
}

// FileTypeFromName returns the lower-case extension of name without the dot.
func FileTypeFromName(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

func (s *DocumentService) ExtractText(path, fileType string) (string, error) {
	var (
		text string
		err  error
	)

	switch strings.ToLower(fileType) {
	case "pdf":
		text, err = extractPDF(path)
	case "docx":
		text, err = extractDOCX(path)
		if err != nil {
			text, err = extractPlainText(path)
		}
	case "doc":
		text, err = extractDOC(path)
	case "txt":
		text, err = extractPlainText(path)
	default:
		return "", fmt.Errorf("%w: %q", utils.ErrUnsupportedFileType, fileType)
	}

	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrExtractionFailed, err)
	}
	return text, nil
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("pdf open: %w", err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf plaintext: %w", err)
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("pdf read: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// extractDOCX gathers the <w:t> runs of word/document.xml, one line per paragraph.
func extractDOCX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer zr.Close()

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("word/document.xml not found")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	var out strings.Builder
	dec := xml.NewDecoder(rc)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("docx xml: %w", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				var v string
				if err := dec.DecodeElement(&v, &el); err != nil {
					return "", fmt.Errorf("docx xml: %w", err)
				}
				out.WriteString(v)
			}
		case xml.EndElement:
			if el.Name.Local == "p" {
				out.WriteString("\n")
			}
		}
	}

	text := strings.TrimSpace(out.String())
	if text == "" {
		return "", fmt.Errorf("no text in docx")
	}
	return text, nil
}

// extractPlainText accepts any file that reads as text.
func extractPlainText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	b = bytes.TrimPrefix(b, []byte("\xef\xbb\xbf"))
	if !isProbablyText(b) {
		return "", fmt.Errorf("file is not text")
	}
	return strings.TrimSpace(string(b)), nil
}

func isProbablyText(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	sample := b[:min(len(b), 4096)]
	if bytes.IndexByte(sample, 0x00) >= 0 {
		return false
	}
	if len(sample) == len(b) {
		return utf8.Valid(sample)
	}
	// the cut may split a rune
	for i := 0; i < utf8.UTFMax && i < len(sample); i++ {
		if utf8.Valid(sample[:len(sample)-i]) {
			return true
		}
	}
	return false
}

var oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// minTextRun is the shortest printable run kept when scraping binary Word files.
const minTextRun = 4

// extractDOC reads legacy Word files. Renamed .docx files go through the zip reader.
// Word 97-2003 compound files are opened with mscfb and the printable runs of the
// WordDocument stream are kept; anything else that fails to parse is scraped whole.
func extractDOC(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	if bytes.HasPrefix(b, []byte("PK")) {
		if text, err := extractDOCX(path); err == nil {
			return text, nil
		}
	}

	var text string
	if bytes.HasPrefix(b, oleMagic) {
		if stream, err := wordDocumentStream(b); err == nil {
			text = printableRuns(stream)
		}
	}
	if text == "" {
		if isProbablyText(b) {
			text = strings.TrimSpace(string(b))
		} else {
			text = printableRuns(b)
		}
	}
	if text == "" {
		return "", fmt.Errorf("no text in doc")
	}
	return text, nil
}

func wordDocumentStream(b []byte) (stream []byte, err error) {
	// truncated or hostile headers can panic inside the compound file reader
	defer func() {
		if r := recover(); r != nil {
			stream, err = nil, fmt.Errorf("doc compound file: %v", r)
		}
	}()

	doc, err := mscfb.New(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("doc compound file: %w", err)
	}
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		if entry.Name != "WordDocument" {
			continue
		}
		return io.ReadAll(entry)
	}
	return nil, fmt.Errorf("WordDocument stream not found")
}

// printableRuns keeps runs of printable ASCII, read either as single bytes or as
// UTF-16LE code units, that are at least minTextRun characters long.
func printableRuns(b []byte) string {
	var (
		runs []string
		cur  []byte
	)
	flush := func() {
		if run := strings.TrimSpace(string(cur)); len(run) >= minTextRun {
			runs = append(runs, run)
		}
		cur = cur[:0]
	}

	for i := 0; i < len(b); i++ {
		c := b[i]
		if !isPrintableByte(c) {
			flush()
			continue
		}
		cur = append(cur, c)
		if i+1 < len(b) && b[i+1] == 0x00 {
			i++
		}
	}
	flush()

	return strings.Join(runs, "\n")
}

func isPrintableByte(c byte) bool {
	return (c >= 0x20 && c < 0x7f) || c == '\t' || c == '\n' || c == '\r'
}
