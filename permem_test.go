package permem

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// resetSingleton clears the process-wide client so each test exercises a
// fresh lazy initialization.
func resetSingleton(t *testing.T) {
	t.Helper()
	defaultClient = nil
	t.Cleanup(func() { defaultClient = nil })
}

// TestConfigure_ReplacesSingleton verifies that Configure followed by a
// convenience call routes requests to the newly configured URL, not any
// previously configured one.
func TestConfigure_ReplacesSingleton(t *testing.T) {
	resetSingleton(t)

	oldServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request reached the previously configured server")
	}))
	defer oldServer.Close()

	var hits int
	newServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"stored":true,"stored_count":1,"duplicates":0,"results":[]}`)
	}))
	defer newServer.Close()

	Configure(WithURL(oldServer.URL))
	Configure(WithURL(newServer.URL))

	_, err := Memorize(context.Background(), "hello", MemorizeOptions{UserID: "u"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits != 1 {
		t.Errorf("expected exactly one request to the new server, got %d", hits)
	}
}

// TestLazyInitialization_FromEnv verifies the singleton is constructed from
// the environment on the first convenience call.
func TestLazyInitialization_FromEnv(t *testing.T) {
	resetSingleton(t)

	var capturedKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedKey = r.Header.Get("x-api-key")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"memories":[]}`)
	}))
	defer server.Close()

	t.Setenv("PERMEM_URL", server.URL)
	t.Setenv("PERMEM_API_KEY", "pm_env_key")

	_, err := Recall(context.Background(), "anything", RecallOptions{UserID: "u"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedKey != "pm_env_key" {
		t.Errorf("expected API key from environment on lazy init, got %q", capturedKey)
	}
}

// TestInstance_ReturnsSameClientUntilConfigure verifies lazy construction
// happens once and Configure swaps the instance wholesale.
func TestInstance_ReturnsSameClientUntilConfigure(t *testing.T) {
	resetSingleton(t)

	first := Instance()
	if first == nil {
		t.Fatal("expected lazily constructed instance")
	}
	if Instance() != first {
		t.Error("expected repeated Instance calls to return the same client")
	}

	Configure(WithURL("http://elsewhere:3333"))
	if Instance() == first {
		t.Error("expected Configure to replace the instance")
	}
}

// TestConvenienceFunctions_Delegate runs each convenience function against a
// mock server to confirm the singleton wiring end to end.
func TestConvenienceFunctions_Delegate(t *testing.T) {
	resetSingleton(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		switch r.URL.Path {
		case "/v1/memories":
			fmt.Fprint(w, `{"stored":true,"stored_count":1,"duplicates":0,"results":[]}`)
		case "/v1/memories/search":
			fmt.Fprint(w, `{"memories":[]}`)
		case "/v1/auto/inbound":
			fmt.Fprint(w, `{"memories":[],"injectionText":"","shouldInject":false}`)
		case "/v1/auto/outbound":
			fmt.Fprint(w, `{"shouldExtract":false,"extracted":0,"skippedDuplicates":0}`)
		case "/health":
			fmt.Fprint(w, `{"status":"ok"}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]any{})
		}
	}))
	defer server.Close()

	Configure(WithURL(server.URL))
	ctx := context.Background()

	if _, err := Memorize(ctx, "c", MemorizeOptions{UserID: "u"}); err != nil {
		t.Errorf("Memorize: %v", err)
	}
	if _, err := Recall(ctx, "q", RecallOptions{UserID: "u"}); err != nil {
		t.Errorf("Recall: %v", err)
	}
	if _, err := Inject(ctx, "m", InjectOptions{UserID: "u"}); err != nil {
		t.Errorf("Inject: %v", err)
	}
	if _, err := Extract(ctx, []Message{{Role: RoleUser, Content: "m"}}, ExtractOptions{UserID: "u"}); err != nil {
		t.Errorf("Extract: %v", err)
	}
	if !Health(ctx) {
		t.Error("Health: expected true")
	}
}
