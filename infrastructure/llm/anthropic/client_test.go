package anthropic

import "testing"

func TestNewClient(t *testing.T) {
	client := NewClient(Config{APIKey: "test-key", Model: "claude-3-5-haiku-latest"})

	if client == nil {
		t.Fatal("NewClient returned nil")
	}
	if client.Model() != "claude-3-5-haiku-latest" {
		t.Errorf("Model() = %q, want claude-3-5-haiku-latest", client.Model())
	}
}
