package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newFakeUpstream(t *testing.T, reply string, sources []string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Contents) == 0 || len(req.Contents[0].Parts) == 0 {
			t.Errorf("empty contents in request")
		}

		chunks := make([]map[string]any, 0, len(sources))
		for _, s := range sources {
			chunks = append(chunks, map[string]any{"web": map[string]any{"uri": s}})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content":           map[string]any{"parts": []map[string]any{{"text": reply}}},
				"groundingMetadata": map[string]any{"groundingChunks": chunks},
			}},
		})
	}))
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{APIKey: "test-key", Model: "gemini-test", BaseURL: baseURL})
}

func TestClient_GenerateReply(t *testing.T) {
	srv := newFakeUpstream(t, "Bonjour, je peux vous aider.", nil)
	defer srv.Close()

	reply, err := newTestClient(srv.URL).GenerateReply(context.Background(), "bonjour")
	if err != nil {
		t.Fatalf("GenerateReply returned error: %v", err)
	}
	if reply != "Bonjour, je peux vous aider." {
		t.Fatalf("unexpected reply: %q", reply)
	}
}

func TestClient_GenerateNews(t *testing.T) {
	payload := `[{"title":"Réforme du casier judiciaire","summary":"Trois phrases.","date":"2025-08-01","country":"Sénégal","readTime":"2 min","source_hint":"journal officiel"}]`
	srv := newFakeUpstream(t, payload, []string{"https://example.sn/article"})
	defer srv.Close()

	result, err := newTestClient(srv.URL).GenerateNews(context.Background(), "état civil")
	if err != nil {
		t.Fatalf("GenerateNews returned error: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(result.Items))
	}
	item := result.Items[0]
	if item.Title != "Réforme du casier judiciaire" || item.ReadTime != "2 min" || item.Source != "journal officiel" {
		t.Fatalf("unexpected item: %+v", item)
	}
	if len(result.Sources) != 1 || result.Sources[0] != "https://example.sn/article" {
		t.Fatalf("unexpected sources: %v", result.Sources)
	}
}

func TestClient_GenerateNews_MalformedPayload(t *testing.T) {
	srv := newFakeUpstream(t, "not json", nil)
	defer srv.Close()

	if _, err := newTestClient(srv.URL).GenerateNews(context.Background(), "état civil"); err == nil {
		t.Fatalf("expected decode error for malformed payload")
	}
}

func TestClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).GenerateReply(context.Background(), "bonjour"); err == nil {
		t.Fatalf("expected error for non-200 upstream status")
	}
}
