package genai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eadmin-africa/portal-api/internal/core/ports"
)

// GenerateReply asks the model for a chat answer to the user's message.
func (c *Client) GenerateReply(ctx context.Context, userText string) (string, error) {
	resp, err := c.generate(ctx, generateRequest{
		Contents:          []content{{Parts: []part{{Text: userText}}}},
		SystemInstruction: &content{Parts: []part{{Text: chatSystemInstruction}}},
		GenerationConfig:  &generationConfig{Temperature: 0.7},
	})
	if err != nil {
		return "", err
	}
	return resp.text(), nil
}

// newsItemWire matches the JSON shape the model is instructed to emit.
type newsItemWire struct {
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Date       string `json:"date"`
	Country    string `json:"country"`
	ReadTime   string `json:"readTime"`
	SourceHint string `json:"source_hint"`
}

// GenerateNews asks the model for a JSON list of recent administrative news
// for the topic, plus the search sources it grounded on.
func (c *Client) GenerateNews(ctx context.Context, topic string) (ports.NewsResult, error) {
	prompt := fmt.Sprintf(`Génère une liste des 5 dernières actualités administratives réelles et importantes pour la catégorie : %q en Afrique (priorité Côte d'Ivoire, Sénégal, Cameroun).
Inclus :
1. Un titre percutant.
2. Un résumé de 3 phrases.
3. La date exacte.
4. Le pays concerné.
5. Une estimation du temps de lecture.

Format de réponse : JSON uniquement.
Structure : Array of { title: string, summary: string, date: string, country: string, readTime: string, source_hint: string }`, topic)

	resp, err := c.generate(ctx, generateRequest{
		Contents:          []content{{Parts: []part{{Text: prompt}}}},
		SystemInstruction: &content{Parts: []part{{Text: newsSystemInstruction}}},
		GenerationConfig:  &generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return ports.NewsResult{}, err
	}

	var wire []newsItemWire
	if err := json.Unmarshal([]byte(resp.text()), &wire); err != nil {
		return ports.NewsResult{}, fmt.Errorf("genai news decode: %w", err)
	}

	items := make([]ports.NewsItem, 0, len(wire))
	for _, w := range wire {
		items = append(items, ports.NewsItem{
			Title:    w.Title,
			Summary:  w.Summary,
			Date:     w.Date,
			Country:  w.Country,
			ReadTime: w.ReadTime,
			Source:   w.SourceHint,
		})
	}

	return ports.NewsResult{Items: items, Sources: resp.sources()}, nil
}
