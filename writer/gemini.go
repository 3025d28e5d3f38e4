package writer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"google.golang.org/genai"

	"blog-agent/config"
)

type WriteResult struct {
	BlogPostHTML string  `json:"blog_post_html"`
	Error        *string `json:"error,omitempty"`
}

type LLMRequestLog struct {
	Prompt       string     `json:"prompt"`
	Response     string     `json:"response"`
	LatencyMs    int64      `json:"latency_ms"`
	TokenUsage   TokenUsage `json:"token_usage"`
	ModelName    string     `json:"model_name"`
	ModelVersion string     `json:"model_version"`
	GeneratedAt  time.Time  `json:"generated_at"`
}

type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

const SYSTEM_INSTRUCTION = `
You are a blog writing assistant. Your task is to turn the provided free-text notes into a short blog post.
The response MUST be a valid JSON object with two keys:

1. blog_post_html: An HTML fragment for the blog post. It MUST start with an <h2> title
   followed by one or more <p> paragraphs expanding on the notes. No <html>, <head> or
   <body> wrapper tags.
2. error: An optional string field. If the notes are empty or cannot be turned into a
   blog post, set this field to a descriptive error message. Otherwise, set it to 'null'.

Additional constraints:
- You MUST NOT wrap the JSON output in a markdown code block (e.g., ` + "```json ... ```" + `).
- The response should contain ONLY the raw JSON string.
- If writing fails, set the 'error' field to an appropriate message and provide an empty
  string for 'blog_post_html'.
`

// GeminiWriter는 노트를 Gemini 호출로 블로그 글 본문으로 확장한다.
type GeminiWriter struct{}

func (GeminiWriter) Write(ctx context.Context, notes string) (string, error) {
	html, _, err := GenerateBlogPost(ctx, notes)
	return html, err
}

func GenerateBlogPost(ctx context.Context, notes string) (string, *LLMRequestLog, error) {
	startTime := time.Now()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}
	modelName := config.GetConfig().GeminiModel

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return "", nil, err
	}

	result, err := client.Models.GenerateContent(
		ctx,
		modelName,
		genai.Text(notes),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: SYSTEM_INSTRUCTION}}},
		},
	)
	if err != nil {
		return "", nil, err
	}

	var out WriteResult
	if err := json.Unmarshal([]byte(result.Text()), &out); err != nil {
		return "", nil, err
	}

	if out.Error != nil {
		return "", nil, fmt.Errorf("ai judged that these notes cannot become a blog post: %s", *out.Error)
	}

	if result.UsageMetadata == nil {
		return out.BlogPostHTML, nil, fmt.Errorf("usage metadata is nil")
	}

	llmLog := &LLMRequestLog{
		Prompt:    fmt.Sprintf("%s\n\n%s", SYSTEM_INSTRUCTION, notes),
		Response:  result.Text(),
		LatencyMs: time.Since(startTime).Milliseconds(),
		TokenUsage: TokenUsage{
			InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
		},
		ModelName:    modelName,
		ModelVersion: result.ModelVersion,
		GeneratedAt:  time.Now(),
	}

	return out.BlogPostHTML, llmLog, nil
}
