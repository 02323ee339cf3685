package client

import (
	"net/http"
	"testing"
)

// TestNew_Defaults verifies that an option-less client resolves to the
// documented default configuration.
func TestNew_Defaults(t *testing.T) {
	c := New()

	cfg := c.Config()
	if cfg.URL != "http://localhost:3333" {
		t.Errorf("expected default URL http://localhost:3333, got %q", cfg.URL)
	}
	if cfg.APIKey != "" {
		t.Errorf("expected empty default API key, got %q", cfg.APIKey)
	}
	if cfg.MaxContextLength != 8000 {
		t.Errorf("expected default MaxContextLength 8000, got %d", cfg.MaxContextLength)
	}
	if cfg.ExtractThreshold != 0.7 {
		t.Errorf("expected default ExtractThreshold 0.7, got %v", cfg.ExtractThreshold)
	}
}

// TestNew_ConfigRoundTrip verifies that explicit options are preserved
// exactly and omitted fields keep their defaults.
func TestNew_ConfigRoundTrip(t *testing.T) {
	c := New(
		WithURL("https://api.permem.dev"),
		WithAPIKey("pm_live_abc"),
		WithExtractThreshold(0.4),
	)

	cfg := c.Config()
	if cfg.URL != "https://api.permem.dev" {
		t.Errorf("expected explicit URL preserved, got %q", cfg.URL)
	}
	if cfg.APIKey != "pm_live_abc" {
		t.Errorf("expected explicit API key preserved, got %q", cfg.APIKey)
	}
	if cfg.ExtractThreshold != 0.4 {
		t.Errorf("expected explicit threshold preserved, got %v", cfg.ExtractThreshold)
	}
	// MaxContextLength was omitted and must fall back to the default.
	if cfg.MaxContextLength != 8000 {
		t.Errorf("expected default MaxContextLength 8000, got %d", cfg.MaxContextLength)
	}
}

// TestOptions_IgnoreZeroValues verifies the guard behavior of options whose
// zero value would clobber a meaningful default.
func TestOptions_IgnoreZeroValues(t *testing.T) {
	c := New(
		WithURL(""),
		WithMaxContextLength(0),
		WithMaxContextLength(-5),
		WithHTTPClient(nil),
		WithTokenEstimator(nil),
	)

	cfg := c.Config()
	if cfg.URL != DefaultURL {
		t.Errorf("expected empty WithURL to be ignored, got %q", cfg.URL)
	}
	if cfg.MaxContextLength != DefaultMaxContextLength {
		t.Errorf("expected non-positive WithMaxContextLength to be ignored, got %d", cfg.MaxContextLength)
	}
	if c.httpClient == nil {
		t.Error("expected nil WithHTTPClient to be ignored")
	}
	if c.estimator == nil {
		t.Error("expected nil WithTokenEstimator to be ignored")
	}
}

// TestFromEnv verifies that PERMEM_* environment variables overlay the
// defaults and that later explicit options still win.
func TestFromEnv(t *testing.T) {
	t.Setenv(EnvURL, "http://permem.internal:9000")
	t.Setenv(EnvAPIKey, "pm_env_key")
	t.Setenv(EnvMaxContextLength, "4000")
	t.Setenv(EnvExtractThreshold, "0.5")

	c := New(FromEnv())
	cfg := c.Config()
	if cfg.URL != "http://permem.internal:9000" {
		t.Errorf("expected URL from environment, got %q", cfg.URL)
	}
	if cfg.APIKey != "pm_env_key" {
		t.Errorf("expected API key from environment, got %q", cfg.APIKey)
	}
	if cfg.MaxContextLength != 4000 {
		t.Errorf("expected MaxContextLength from environment, got %d", cfg.MaxContextLength)
	}
	if cfg.ExtractThreshold != 0.5 {
		t.Errorf("expected ExtractThreshold from environment, got %v", cfg.ExtractThreshold)
	}

	// Explicit options after FromEnv take precedence.
	c = New(FromEnv(), WithURL("http://explicit:1234"))
	if got := c.Config().URL; got != "http://explicit:1234" {
		t.Errorf("expected explicit option to win over environment, got %q", got)
	}
}

// TestFromEnv_IgnoresUnparsableValues verifies that malformed numeric
// environment values fall back to the defaults instead of failing.
func TestFromEnv_IgnoresUnparsableValues(t *testing.T) {
	t.Setenv(EnvMaxContextLength, "not-a-number")
	t.Setenv(EnvExtractThreshold, "high")

	cfg := New(FromEnv()).Config()
	if cfg.MaxContextLength != DefaultMaxContextLength {
		t.Errorf("expected default MaxContextLength, got %d", cfg.MaxContextLength)
	}
	if cfg.ExtractThreshold != DefaultExtractThreshold {
		t.Errorf("expected default ExtractThreshold, got %v", cfg.ExtractThreshold)
	}
}

// TestNew_InstancesAreIndependent verifies that each construction performs a
// fresh resolution; clients never share configuration.
func TestNew_InstancesAreIndependent(t *testing.T) {
	a := New(WithURL("http://a"))
	b := New(WithURL("http://b"), WithHTTPClient(&http.Client{}))

	if a.Config().URL == b.Config().URL {
		t.Error("expected independent configurations per instance")
	}
	if a.httpClient == b.httpClient {
		t.Error("expected independent HTTP clients per instance")
	}
}
