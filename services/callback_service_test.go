package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"blog-agent/services"
)

type stubWriter struct {
	html  string
	err   error
	calls int
}

func (s *stubWriter) Write(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.html, s.err
}

func TestWritePostTemplateMode(t *testing.T) {
	gemini := &stubWriter{html: "<h2>Generated</h2><p>unused</p>"}
	svc := services.NewCallbackService("template", gemini)

	got := svc.WritePost(context.Background(), "my notes")

	assert.Equal(t, "<h2>Blog Post</h2><p>my notes</p>", got)
	assert.Zero(t, gemini.calls, "template mode must not call the gemini writer")
}

func TestWritePostGeminiMode(t *testing.T) {
	gemini := &stubWriter{html: "<h2>Generated</h2><p>expanded from notes</p>"}
	svc := services.NewCallbackService(services.WriterModeGemini, gemini)

	got := svc.WritePost(context.Background(), "my notes")

	assert.Equal(t, "<h2>Generated</h2><p>expanded from notes</p>", got)
	assert.Equal(t, 1, gemini.calls)
}

func TestWritePostGeminiFailureFallsBackToTemplate(t *testing.T) {
	gemini := &stubWriter{err: errors.New("quota exceeded")}
	svc := services.NewCallbackService(services.WriterModeGemini, gemini)

	got := svc.WritePost(context.Background(), "my notes")

	assert.Equal(t, "<h2>Blog Post</h2><p>my notes</p>", got)
	assert.Equal(t, 1, gemini.calls)
}

func TestWritePostNilGeminiWriter(t *testing.T) {
	svc := services.NewCallbackService(services.WriterModeGemini, nil)

	got := svc.WritePost(context.Background(), "my notes")

	assert.Equal(t, "<h2>Blog Post</h2><p>my notes</p>", got)
}
