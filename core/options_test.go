package core

import (
	"context"
	"testing"
	"time"
)

type fixedConfigProvider struct {
	cfg Config
}

func (p *fixedConfigProvider) Load(context.Context, Config) (Config, error) {
	return p.cfg, nil
}

type fixedOptionsResolver struct {
	cfg Config
}

func (r *fixedOptionsResolver) Resolve(Config, Config, Config) (Config, error) {
	return r.cfg, nil
}

func TestNewClient_DefaultsAndResolvedConfig(t *testing.T) {
	client, err := NewClient(Config{}, WithTransport(&scriptedTransport{}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	cfg := client.Config()
	if cfg.AccountBaseURL != defaultAccountBaseURL {
		t.Fatalf("expected default account url, got %q", cfg.AccountBaseURL)
	}
	if cfg.Locale != defaultLocale {
		t.Fatalf("expected default locale, got %q", cfg.Locale)
	}
	if cfg.Timeout != defaultRequestTimeout {
		t.Fatalf("expected default timeout, got %v", cfg.Timeout)
	}
	if client.Session() == nil {
		t.Fatalf("expected owned session store")
	}
}

func TestNewClient_RuntimeConfigWinsOverLoaded(t *testing.T) {
	loaded := DefaultConfig()
	loaded.Locale = "de-DE"
	loaded.Timeout = 5 * time.Second

	client, err := NewClient(Config{Locale: "fr-FR"},
		WithTransport(&scriptedTransport{}),
		WithConfigProvider(&fixedConfigProvider{cfg: loaded}),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	cfg := client.Config()
	if cfg.Locale != "fr-FR" {
		t.Fatalf("expected runtime locale to win, got %q", cfg.Locale)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("expected loaded timeout to survive, got %v", cfg.Timeout)
	}
}

func TestNewClient_CustomResolverAndSessionSeed(t *testing.T) {
	resolved := DefaultConfig()
	resolved.UserAgent = "custom-agent"

	client, err := NewClient(Config{},
		WithTransport(&scriptedTransport{}),
		WithOptionsResolver(&fixedOptionsResolver{cfg: resolved}),
		WithSessionToken("T-seeded"),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if got := client.Config().UserAgent; got != "custom-agent" {
		t.Fatalf("expected resolver output, got %q", got)
	}
	if got := client.SessionToken(); got != "T-seeded" {
		t.Fatalf("expected seeded session token, got %q", got)
	}
}

func TestNewClient_SharedSessionStore(t *testing.T) {
	shared := NewSessionStore()
	shared.Set("T-shared")

	client, err := NewClient(Config{},
		WithTransport(&scriptedTransport{}),
		WithSessionStore(shared),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if got := client.SessionToken(); got != "T-shared" {
		t.Fatalf("expected shared token, got %q", got)
	}
	shared.Set("T-rotated")
	if got := client.SessionToken(); got != "T-rotated" {
		t.Fatalf("expected rotation to be visible, got %q", got)
	}
}

func TestCfgxConfigProvider_StaticLoader(t *testing.T) {
	provider := NewCfgxConfigProvider(staticRawConfigLoader{Values: map[string]any{
		"locale": "es-ES",
	}})
	cfg, err := provider.Load(context.Background(), DefaultConfig())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Locale != "es-ES" {
		t.Fatalf("expected loaded locale, got %q", cfg.Locale)
	}
	if cfg.APIBaseURL != defaultAPIBaseURL {
		t.Fatalf("expected defaults to fill gaps, got %q", cfg.APIBaseURL)
	}
}
