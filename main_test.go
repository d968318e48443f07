package main

import (
	"testing"

	"github.com/fluxtab/tabaction/internal/config"
)

func TestCollectTTYDetailsProbesStandardDescriptors(t *testing.T) {
	details := collectTTYDetails()
	if len(details.Probes) != 3 {
		t.Fatalf("expected 3 probes, got %d", len(details.Probes))
	}
	want := []string{"stdin", "stdout", "stderr"}
	for i, name := range want {
		if details.Probes[i].Name != name {
			t.Fatalf("probe %d = %q, want %q", i, details.Probes[i].Name, name)
		}
	}
}

func TestStartupTracePayloadIncludesFlagsAndArgs(t *testing.T) {
	cfg, err := config.LoadArgs([]string{"-endpoint", "http://127.0.0.1:9222", "-verbose"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs failed: %v", err)
	}
	payload := startupTracePayload(cfg)

	flags, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload, got %T", payload["flags"])
	}
	if flags["endpoint"] != "http://127.0.0.1:9222" {
		t.Fatalf("expected endpoint flag in payload, got %v", flags["endpoint"])
	}
	argv, ok := payload["argv"].([]string)
	if !ok || len(argv) != 3 {
		t.Fatalf("expected raw argv in payload, got %v", payload["argv"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload, got %T", payload["tty"])
	}
}
