package ports

import "context"

// NewsItem is one AI-curated news entry.
type NewsItem struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Date     string `json:"date"`
	Country  string `json:"country"`
	ReadTime string `json:"read_time"`
	Source   string `json:"source,omitempty"`
}

// NewsResult bundles curated items with the upstream search sources.
type NewsResult struct {
	Items   []NewsItem `json:"items"`
	Sources []string   `json:"sources"`
}

// TextGenerator is the opaque boundary to the upstream generative-text
// provider. Errors cross this boundary; the AssistantService converts them
// to neutral fallbacks.
type TextGenerator interface {
	GenerateReply(ctx context.Context, userText string) (string, error)
	GenerateNews(ctx context.Context, topic string) (NewsResult, error)
}

// NewsCache stores curated news per topic for a bounded time.
type NewsCache interface {
	Get(ctx context.Context, topic string) (NewsResult, bool, error)
	Set(ctx context.Context, topic string, result NewsResult) error
}

// AssistantService wraps the generative-text boundary with total semantics:
// Ask and CuratedNews never fail, they degrade to fallback values.
type AssistantService interface {
	Ask(ctx context.Context, userText string) string
	CuratedNews(ctx context.Context, topic string) NewsResult
}
