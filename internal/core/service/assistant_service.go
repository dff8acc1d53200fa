package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/eadmin-africa/portal-api/internal/api/metrics"
	"github.com/eadmin-africa/portal-api/internal/core/ports"
)

// FallbackReply is returned when the upstream generative provider fails.
const FallbackReply = "Désolé, je rencontre une petite difficulté technique. Veuillez réessayer plus tard."

// AssistantService wraps the generative-text boundary with total semantics:
// upstream failures never surface to callers, they degrade to a fixed
// apology or an empty news result.
type AssistantService struct {
	gen   ports.TextGenerator
	cache ports.NewsCache
	log   zerolog.Logger
}

// NewAssistantService returns an AssistantService. cache may be nil, in
// which case every news call goes upstream.
func NewAssistantService(gen ports.TextGenerator, cache ports.NewsCache, log zerolog.Logger) *AssistantService {
	return &AssistantService{gen: gen, cache: cache, log: log}
}

// Ask returns the assistant's reply to the user's message, or the fallback
// apology when the upstream call fails.
func (s *AssistantService) Ask(ctx context.Context, userText string) string {
	reply, err := s.gen.GenerateReply(ctx, userText)
	if err != nil || reply == "" {
		s.log.Warn().Err(err).Msg("assistant reply failed, serving fallback")
		metrics.AssistantCallsTotal.WithLabelValues("chat", "fallback").Inc()
		return FallbackReply
	}
	metrics.AssistantCallsTotal.WithLabelValues("chat", "ok").Inc()
	return reply
}

// CuratedNews returns AI-curated news for the topic. Results are cached per
// normalized topic; upstream or cache failures degrade to an empty result.
func (s *AssistantService) CuratedNews(ctx context.Context, topic string) ports.NewsResult {
	key := strings.ToLower(strings.TrimSpace(topic))

	if s.cache != nil {
		cached, hit, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.Warn().Err(err).Str("topic", key).Msg("news cache read failed")
		} else if hit {
			metrics.NewsCacheTotal.WithLabelValues("hit").Inc()
			return cached
		}
		metrics.NewsCacheTotal.WithLabelValues("miss").Inc()
	}

	result, err := s.gen.GenerateNews(ctx, topic)
	if err != nil {
		s.log.Warn().Err(err).Str("topic", key).Msg("news fetch failed, serving empty result")
		metrics.AssistantCallsTotal.WithLabelValues("news", "fallback").Inc()
		return ports.NewsResult{Items: []ports.NewsItem{}, Sources: []string{}}
	}
	if result.Items == nil {
		result.Items = []ports.NewsItem{}
	}
	if result.Sources == nil {
		result.Sources = []string{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, result); err != nil {
			s.log.Warn().Err(err).Str("topic", key).Msg("news cache write failed")
		}
	}

	metrics.AssistantCallsTotal.WithLabelValues("news", "ok").Inc()
	return result
}
