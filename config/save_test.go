package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/gitseed/testutil"
)

func readYAML(t *testing.T, path string) map[string]interface{} {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	var saved map[string]interface{}
	if err := yaml.Unmarshal(data, &saved); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	return saved
}

func TestSaveConfig_SaveGlobal(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	cfg := DefaultSaveConfig()
	configPath := filepath.Join(tmpHome, ".config", "gitseed", "config.yaml")

	t.Run("creates config file", func(t *testing.T) {
		if err := cfg.SaveGlobal(KeyDefaultBranch, "trunk"); err != nil {
			t.Fatalf("SaveGlobal() error = %v", err)
		}

		saved := readYAML(t, configPath)
		if saved[KeyDefaultBranch] != "trunk" {
			t.Errorf("default_branch = %v, want trunk", saved[KeyDefaultBranch])
		}
	})

	t.Run("updates existing config", func(t *testing.T) {
		if err := cfg.SaveGlobal(KeyLogLevel, "debug"); err != nil {
			t.Fatalf("SaveGlobal() error = %v", err)
		}

		saved := readYAML(t, configPath)
		if saved[KeyDefaultBranch] != "trunk" {
			t.Errorf("default_branch = %v, want trunk", saved[KeyDefaultBranch])
		}
		if saved[KeyLogLevel] != "debug" {
			t.Errorf("log_level = %v, want debug", saved[KeyLogLevel])
		}
	})

	t.Run("rejects invalid key", func(t *testing.T) {
		err := cfg.SaveGlobal("colour", "blue")
		if err == nil {
			t.Fatal("expected error for invalid key")
		}
		if !strings.Contains(err.Error(), "unknown global config key") {
			t.Errorf("error = %v, want to contain 'unknown global config key'", err)
		}
	})

	t.Run("round trips through resolver", func(t *testing.T) {
		resolver := NewResolverWithPaths(DefaultResolverConfig(), configPath, "")
		resolved := resolver.Resolve()

		if got := resolved.Get(KeyDefaultBranch); got != "trunk" {
			t.Errorf("default_branch = %q, want trunk", got)
		}
	})

	t.Run("deletes key", func(t *testing.T) {
		if err := cfg.DeleteGlobalKey(KeyLogLevel); err != nil {
			t.Fatalf("DeleteGlobalKey() error = %v", err)
		}

		saved := readYAML(t, configPath)
		if _, ok := saved[KeyLogLevel]; ok {
			t.Error("log_level still present after delete")
		}
		if saved[KeyDefaultBranch] != "trunk" {
			t.Errorf("default_branch = %v, want trunk", saved[KeyDefaultBranch])
		}
	})
}

func TestSaveConfig_GlobalNotConfigured(t *testing.T) {
	err := SaveConfig{}.SaveGlobal(KeyLogLevel, "debug")
	if err == nil || !strings.Contains(err.Error(), "not configured") {
		t.Errorf("error = %v, want 'not configured'", err)
	}
}

func TestSaveConfig_SaveLocal(t *testing.T) {
	root := t.TempDir()
	cfg := DefaultSaveConfig()

	if err := cfg.SaveLocal(root, KeyDescription, "Billing service"); err != nil {
		t.Fatalf("SaveLocal() error = %v", err)
	}

	path := filepath.Join(root, LocalConfigName)
	saved := readYAML(t, path)
	if saved[KeyDescription] != "Billing service" {
		t.Errorf("description = %v, want 'Billing service'", saved[KeyDescription])
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm&0o044 == 0 {
		t.Errorf("local config mode = %v, want group/other readable", perm)
	}

	if err := cfg.DeleteLocalKey(root, KeyDescription); err != nil {
		t.Fatalf("DeleteLocalKey() error = %v", err)
	}
	if saved := readYAML(t, path); len(saved) != 0 {
		t.Errorf("local config = %v, want empty", saved)
	}
}

func TestSaveConfig_SaveLocal_NoRoot(t *testing.T) {
	err := DefaultSaveConfig().SaveLocal("", KeyLogLevel, "info")
	if err == nil || !strings.Contains(err.Error(), "repository root not found") {
		t.Errorf("error = %v, want 'repository root not found'", err)
	}
}

func TestSaveConfig_DeleteMissingFile(t *testing.T) {
	if err := DefaultSaveConfig().DeleteLocalKey(t.TempDir(), KeyLogLevel); err != nil {
		t.Errorf("DeleteLocalKey() error = %v, want nil", err)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want interface{}
	}{
		{"true", true},
		{"FALSE", false},
		{"main", "main"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := parseValue(tt.in); got != tt.want {
			t.Errorf("parseValue(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSaveConfig_RejectsInvalidValues(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)
	root := t.TempDir()

	cfg := DefaultSaveConfig()

	tests := []struct {
		key   string
		value string
	}{
		{KeyLogLevel, "loud"},
		{KeyDefaultBranch, ".hidden"},
		{KeyDefaultBranch, "a..b"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			if err := cfg.SaveGlobal(tt.key, tt.value); err == nil {
				t.Errorf("SaveGlobal(%s, %q) error = nil, want invalid value", tt.key, tt.value)
			}
			if err := cfg.SaveLocal(root, tt.key, tt.value); err == nil {
				t.Errorf("SaveLocal(%s, %q) error = nil, want invalid value", tt.key, tt.value)
			}
		})
	}

	testutil.AssertNotExist(t, filepath.Join(tmpHome, ".config", "gitseed", "config.yaml"))
	testutil.AssertNotExist(t, filepath.Join(root, LocalConfigName))

	if err := cfg.SaveGlobal(KeyLogLevel, "info"); err != nil {
		t.Errorf("SaveGlobal(log_level, info) error = %v", err)
	}
}

func TestSaveConfig_UnparseableFileUntouched(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, LocalConfigName)
	const broken = "description: Billing\ndefault_branch: [unterminated\n"
	if err := os.WriteFile(path, []byte(broken), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultSaveConfig()
	if err := cfg.SaveLocal(root, KeyLogLevel, "info"); err == nil {
		t.Error("SaveLocal() error = nil, want parse error")
	}
	if err := cfg.DeleteLocalKey(root, KeyDescription); err == nil {
		t.Error("DeleteLocalKey() error = nil, want parse error")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != broken {
		t.Errorf("local config = %q, want unchanged", data)
	}
}

func TestValidateValue(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
	}{
		{KeyLogLevel, "debug", false},
		{KeyLogLevel, "WARN", false},
		{KeyLogLevel, "loud", true},
		{KeyDefaultBranch, "trunk", false},
		{KeyDefaultBranch, "feature/x", false},
		{KeyDefaultBranch, "x.lock/y", true},
		{KeyDescription, "anything goes", false},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			err := ValidateValue(tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateValue(%s, %q) error = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
			}
		})
	}
}
