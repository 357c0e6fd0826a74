package attach

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"
)

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(data []byte) (string, error) { return s.text, s.err }

func TestSummarizeNoFile(t *testing.T) {
	s := NewSummarizer(nil)
	if got := s.Summarize(nil); got != "" {
		t.Fatalf("expected empty summary for nil file, got %q", got)
	}
	if got := s.Summarize(&File{}); got != "" {
		t.Fatalf("expected empty summary for empty name, got %q", got)
	}
}

func TestSummarizeTextTruncation(t *testing.T) {
	data := []byte(strings.Repeat("a", 5000))
	s := NewSummarizer(nil)
	got := s.Summarize(&File{Name: "notes.txt", MIMEType: "text/plain", Data: data})

	want := "[Document: notes.txt]\n" + strings.Repeat("a", 4000)
	if got != want {
		t.Fatalf("truncated summary mismatch: got %d chars", len(got))
	}
}

func TestSummarizeTextShortAndInvalidUTF8(t *testing.T) {
	s := NewSummarizer(nil)
	got := s.Summarize(&File{Name: "a.md", Data: []byte("hi\xffthere")})
	if got != "[Document: a.md]\nhithere" {
		t.Fatalf("invalid bytes not dropped: %q", got)
	}
}

func TestSummarizeImage(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 3, 2))); err != nil {
		t.Fatal(err)
	}
	s := NewSummarizer(nil)
	got := s.Summarize(&File{Name: "pic.png", MIMEType: "image/png", Data: buf.Bytes()})

	if got != "[Image attached: pic.png (3×2px)]" {
		t.Fatalf("unexpected image summary: %q", got)
	}
	if strings.Contains(got, string(buf.Bytes()[:8])) {
		t.Fatalf("summary leaks raw bytes: %q", got)
	}
}

func TestSummarizeImageUndecodable(t *testing.T) {
	s := NewSummarizer(nil)
	got := s.Summarize(&File{Name: "pic.png", MIMEType: "image/png", Data: []byte("not a png")})
	if got != "[Image attached: pic.png]" {
		t.Fatalf("unexpected fallback image summary: %q", got)
	}
}

func TestSummarizePDF(t *testing.T) {
	s := NewSummarizer(&stubExtractor{text: strings.Repeat("p", 4100)})
	got := s.Summarize(&File{Name: "doc.pdf", MIMEType: "application/pdf", Data: []byte("%PDF")})

	want := "[PDF: doc.pdf]\n" + strings.Repeat("p", 4000)
	if got != want {
		t.Fatalf("pdf summary mismatch: got %d chars", len(got))
	}
}

func TestSummarizePDFExtractionUnavailable(t *testing.T) {
	for _, s := range []*Summarizer{
		NewSummarizer(nil),
		NewSummarizer(&stubExtractor{err: errors.New("corrupt")}),
	} {
		got := s.Summarize(&File{Name: "doc.pdf", Data: []byte("%PDF")})
		if got != "[File attached: doc.pdf]" {
			t.Fatalf("expected filename-only fallback, got %q", got)
		}
	}
}

func TestSummarizeUnsupportedType(t *testing.T) {
	s := NewSummarizer(nil)
	got := s.Summarize(&File{Name: "data.bin", MIMEType: "application/octet-stream", Data: []byte{1, 2, 3}})
	if got != "[File attached: data.bin]" {
		t.Fatalf("unexpected summary: %q", got)
	}
}
