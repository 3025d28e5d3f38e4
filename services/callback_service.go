package services

import (
	"context"
	"time"

	"blog-agent/api/trace"
	"blog-agent/logger"
	"blog-agent/writer"
)

const WriterModeGemini = "gemini"

// CallbackService encapsulates blog post generation for inbound callbacks.
//
// - mode: "gemini" 면 gemini writer 로 본문을 생성하고, 그 외에는 고정 템플릿을 쓴다.
// - gemini 호출이 실패하면 템플릿 출력으로 폴백해 콜백 응답 자체는 항상 성공시킨다.
type CallbackService struct {
	mode     string
	gemini   writer.Writer
	template writer.TemplateWriter
}

func NewCallbackService(mode string, gemini writer.Writer) *CallbackService {
	return &CallbackService{mode: mode, gemini: gemini}
}

// WritePost renders notes into a blog post HTML fragment.
func (s *CallbackService) WritePost(ctx context.Context, notes string) string {
	if s.mode == WriterModeGemini && s.gemini != nil {
		requestID, spanID := trace.NextSpanID(ctx)
		start := time.Now()
		html, err := s.gemini.Write(ctx, notes)
		if err == nil {
			logger.InfoWithFields("gemini write completed", logger.Fields{
				"request_id": requestID,
				"span_id":    spanID,
				"duration":   time.Since(start).String(),
			})
			return html
		}
		logger.ErrorWithFields("gemini write failed, falling back to template", logger.Fields{
			"request_id": requestID,
			"span_id":    spanID,
			"error":      err.Error(),
		})
	}

	html, _ := s.template.Write(ctx, notes)
	return html
}
