package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	// Clear XDG_CACHE_HOME to test default behavior
	oldXdg := os.Getenv("XDG_CACHE_HOME")
	os.Unsetenv("XDG_CACHE_HOME")
	defer func() {
		if oldXdg != "" {
			os.Setenv("XDG_CACHE_HOME", oldXdg)
		}
	}()

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := "/tmp/custom-cache"
	oldXdg := os.Getenv("XDG_CACHE_HOME")
	os.Setenv("XDG_CACHE_HOME", customCache)
	defer func() {
		if oldXdg != "" {
			os.Setenv("XDG_CACHE_HOME", oldXdg)
		} else {
			os.Unsetenv("XDG_CACHE_HOME")
		}
	}()

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestParseWidths(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"single", "1024", []int{1024}, false},
		{"several", "1024,600,400", []int{1024, 600, 400}, false},
		{"spaces", " 768 , 480 ", []int{768, 480}, false},
		{"trailing comma", "320,", []int{320}, false},
		{"not a number", "wide", nil, true},
		{"mixed", "1024,huge", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWidths(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseWidths(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseWidths(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseWidths(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseArtifacts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "index.html", []string{"index.html"}},
		{"several", "index.html,styles.css", []string{"index.html", "styles.css"}},
		{"spaces", " layout.json , tree.svg ", []string{"layout.json", "tree.svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseArtifacts(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseArtifacts(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"build", "serve", "layout", "preview", "inspect", "content", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}

	if root.Use != appName {
		t.Errorf("root.Use = %q, want %q", root.Use, appName)
	}
}

func TestNewCacheBackendUnknown(t *testing.T) {
	_, err := newCacheBackend(context.Background(), "etcd", RedisConfig{})
	if err == nil {
		t.Fatal("expected an error for an unknown backend")
	}
	if !strings.Contains(err.Error(), "etcd") {
		t.Errorf("error %q should name the unknown backend", err)
	}
}

func TestNewCacheBackendNone(t *testing.T) {
	store, err := newCacheBackend(context.Background(), cacheBackendNone, RedisConfig{})
	if err != nil {
		t.Fatalf("newCacheBackend(none) error: %v", err)
	}

	// The null backend never reports hits.
	_ = store.Set(context.Background(), "k", []byte("v"), 0)
	if _, hit, _ := store.Get(context.Background(), "k"); hit {
		t.Error("null cache backend should not store entries")
	}
}
