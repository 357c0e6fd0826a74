package attach

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"unicode/utf8"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// maxSummaryChars bounds the extracted document text embedded in a summary.
const maxSummaryChars = 4000

// File is one uploaded attachment as received from the form.
type File struct {
	Name     string
	MIMEType string
	Data     []byte
}

// TextExtractor is the injected PDF text-extraction capability. A nil
// extractor means the capability is unavailable and PDF uploads degrade to a
// filename-only label.
type TextExtractor interface {
	Extract(data []byte) (string, error)
}

// Summarizer converts an uploaded file into a bounded text fragment that
// stands in for the file's content in the outgoing prompt.
type Summarizer struct {
	extractor TextExtractor
}

func NewSummarizer(extractor TextExtractor) *Summarizer {
	return &Summarizer{extractor: extractor}
}

// Summarize produces at most one fragment per message. Dispatch is by MIME
// prefix for images and by filename suffix otherwise; unsupported types are
// still accepted but summarized only by filename.
func (s *Summarizer) Summarize(f *File) string {
	if f == nil || f.Name == "" {
		return ""
	}

	lower := strings.ToLower(f.Name)
	switch {
	case strings.HasPrefix(f.MIMEType, "image/") || isImageExt(lower):
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(f.Data)); err == nil {
			return fmt.Sprintf("[Image attached: %s (%d×%dpx)]", f.Name, cfg.Width, cfg.Height)
		}
		return fmt.Sprintf("[Image attached: %s]", f.Name)

	case strings.HasSuffix(lower, ".txt") || strings.HasSuffix(lower, ".md"):
		txt := truncate(strings.ToValidUTF8(string(f.Data), ""))
		return fmt.Sprintf("[Document: %s]\n%s", f.Name, txt)

	case strings.HasSuffix(lower, ".pdf"):
		if s.extractor == nil {
			return fmt.Sprintf("[File attached: %s]", f.Name)
		}
		text, err := s.extractor.Extract(f.Data)
		if err != nil {
			return fmt.Sprintf("[File attached: %s]", f.Name)
		}
		return fmt.Sprintf("[PDF: %s]\n%s", f.Name, truncate(text))

	default:
		return fmt.Sprintf("[File attached: %s]", f.Name)
	}
}

func isImageExt(name string) bool {
	switch filepath.Ext(name) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return true
	}
	return false
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxSummaryChars {
		return s
	}
	return string([]rune(s)[:maxSummaryChars])
}
