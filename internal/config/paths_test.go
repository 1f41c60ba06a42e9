package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultManifestPath(t *testing.T) {
	home := t.TempDir()
	got := DefaultManifestPath(home)
	want := filepath.Join(home, ".pixi", "manifests", "pixi-global.toml")
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestTemplateDefaultsDiffer(t *testing.T) {
	if SystemTemplatePath == UserTemplatePath {
		t.Fatalf("system and user template defaults must differ")
	}
	if SystemExecName == UserExecName {
		t.Fatalf("system and user aliases must differ")
	}
}
