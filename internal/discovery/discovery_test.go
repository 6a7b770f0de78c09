package discovery

import "testing"

func TestLookup(t *testing.T) {
	registry := NewRegistry()
	registry.Register(UserAuthService, []string{"http://auth-1:8081", "http://auth-2:8081"})

	urls, err := registry.Lookup(UserAuthService)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(urls) != 2 || urls[0] != "http://auth-1:8081" {
		t.Errorf("unexpected instances: %v", urls)
	}
}

func TestLookupUnknownService(t *testing.T) {
	registry := NewRegistry()
	if _, err := registry.Lookup("no-such-service"); err == nil {
		t.Error("expected an error for an unknown service name")
	}
}

func TestLookupEmptyInstanceList(t *testing.T) {
	registry := NewRegistry()
	registry.Register(UserAuthService, nil)
	if _, err := registry.Lookup(UserAuthService); err == nil {
		t.Error("expected an error for a service with no instances")
	}
}

func TestRegisterReplaces(t *testing.T) {
	registry := NewRegistry()
	registry.Register(UserAuthService, []string{"http://old:8081"})
	registry.Register(UserAuthService, []string{"http://new:8081"})

	urls, err := registry.Lookup(UserAuthService)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(urls) != 1 || urls[0] != "http://new:8081" {
		t.Errorf("expected replacement, got %v", urls)
	}
}
