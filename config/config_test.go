package config

import (
	"flag"
	"io"
	"strings"
	"testing"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	want := Config{Resources: "resources", TPS: 60}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("PONGCADE_RESOURCES", "/opt/pongcade")
	t.Setenv("PONGCADE_MUTE", "true")
	t.Setenv("PONGCADE_VOLUME", "-1.5")
	t.Setenv("PONGCADE_SPECTATE_ADDR", ":8080")

	cfg, err := ParseConfig(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Resources != "/opt/pongcade" || !cfg.Mute || cfg.Volume != -1.5 || cfg.SpectateAddr != ":8080" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("PONGCADE_TPS", "30")
	t.Setenv("PONGCADE_FULLSCREEN", "true")

	cfg, err := ParseConfig(newFlagSet(), []string{"-tps", "120", "-fullscreen=false"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.TPS != 120 {
		t.Errorf("expected tps 120, got %d", cfg.TPS)
	}
	if cfg.Fullscreen {
		t.Error("expected fullscreen flag to override env")
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
		want string
	}{
		{"bad env", map[string]string{"PONGCADE_TPS": "fast"}, nil, "parse env:"},
		{"bad flag", nil, []string{"-nope"}, "parse flags:"},
		{"zero tps", nil, []string{"-tps", "0"}, "tps must be positive"},
		{"empty resources", nil, []string{"-resources", ""}, "resources directory"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := ParseConfig(newFlagSet(), tc.args)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in %v", tc.want, err)
			}
		})
	}
}
