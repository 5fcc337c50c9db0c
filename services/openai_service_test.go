package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// completionJSON builds a minimal chat-completions response body.
func completionJSON(content string) ([]byte, error) {
	return json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
}

func TestCompleteReturnsFirstChoice(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		body, _ := completionJSON("  hello there \n")
		_, _ = w.Write(body)
	}))
	defer ts.Close()

	svc := &OpenAIService{APIKey: "sk-test", BaseURL: ts.URL, Client: ts.Client()}
	out, err := svc.Complete(context.Background(), ModelText, []ChatMessage{
		{Role: "user", Content: "hi"},
	}, 0.3, 100)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out != "hello there" {
		t.Fatalf("expected trimmed content, got %q", out)
	}
	if gotPath != "/chat/completions" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer sk-test" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit exceeded"}}`))
	}))
	defer ts.Close()

	svc := &OpenAIService{APIKey: "sk-test", BaseURL: ts.URL, Client: ts.Client()}
	_, err := svc.Complete(context.Background(), ModelText, nil, 0.3, 0)
	if err == nil || !strings.Contains(err.Error(), "rate limit exceeded") {
		t.Fatalf("expected rate limit error, got %v", err)
	}
}

func TestCompleteRejectsEmptyChoices(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	svc := &OpenAIService{APIKey: "sk-test", BaseURL: ts.URL, Client: ts.Client()}
	if _, err := svc.Complete(context.Background(), ModelText, nil, 0.3, 0); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestCompleteRequiresAPIKey(t *testing.T) {
	t.Parallel()

	svc := &OpenAIService{APIKey: ""}
	if _, err := svc.Complete(context.Background(), ModelText, nil, 0.3, 0); err == nil {
		t.Fatal("expected error when API key is missing")
	}
}

func TestCompleteEncodesImageParts(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		body, _ := completionJSON("[]")
		_, _ = w.Write(body)
	}))
	defer ts.Close()

	svc := &OpenAIService{APIKey: "sk-test", BaseURL: ts.URL, Client: ts.Client()}
	_, err := svc.Complete(context.Background(), ModelVision, []ChatMessage{
		{Role: "user", Content: []ContentPart{
			{Type: "text", Text: "what is this"},
			{Type: "image_url", ImageURL: &ImageURL{URL: "data:image/png;base64,AAAA"}},
		}},
	}, 0.3, 300)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	messages, ok := gotBody["messages"].([]any)
	if !ok || len(messages) != 1 {
		t.Fatalf("unexpected messages payload: %v", gotBody["messages"])
	}
	parts, ok := messages[0].(map[string]any)["content"].([]any)
	if !ok || len(parts) != 2 {
		t.Fatalf("expected two content parts, got %v", messages[0])
	}
	imagePart := parts[1].(map[string]any)
	if imagePart["type"] != "image_url" {
		t.Fatalf("expected image_url part, got %v", imagePart)
	}
	if imagePart["image_url"].(map[string]any)["url"] != "data:image/png;base64,AAAA" {
		t.Fatalf("data URI not preserved: %v", imagePart)
	}
}
