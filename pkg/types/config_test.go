package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "defaults are valid",
			config:  DefaultConfig(),
			wantErr: nil,
		},
		{
			name:    "dotted namespace is valid",
			config:  Config{Namespace: "cairo.contracts", LibsDir: "contracts/libs", SkipPolicy: SkipVerify},
			wantErr: nil,
		},
		{
			name:    "empty namespace returns ErrNamespaceInvalid",
			config:  Config{Namespace: "", LibsDir: "contracts/libs", SkipPolicy: SkipExisting},
			wantErr: ErrNamespaceInvalid,
		},
		{
			name:    "namespace with dash returns ErrNamespaceInvalid",
			config:  Config{Namespace: "my-contracts", LibsDir: "contracts/libs", SkipPolicy: SkipExisting},
			wantErr: ErrNamespaceInvalid,
		},
		{
			name:    "absolute libs dir returns ErrLibsDirInvalid",
			config:  Config{Namespace: "contracts", LibsDir: "/tmp/libs", SkipPolicy: SkipExisting},
			wantErr: ErrLibsDirInvalid,
		},
		{
			name:    "libs dir escaping project returns ErrLibsDirInvalid",
			config:  Config{Namespace: "contracts", LibsDir: "../libs", SkipPolicy: SkipExisting},
			wantErr: ErrLibsDirInvalid,
		},
		{
			name:    "libs dir equal to project returns ErrLibsDirInvalid",
			config:  Config{Namespace: "contracts", LibsDir: ".", SkipPolicy: SkipExisting},
			wantErr: ErrLibsDirInvalid,
		},
		{
			name:    "unknown skip policy returns ErrSkipPolicyUnknown",
			config:  Config{Namespace: "contracts", LibsDir: "contracts/libs", SkipPolicy: "overwrite"},
			wantErr: ErrSkipPolicyUnknown,
		},
		{
			name:    "bad exclude pattern returns ErrExcludeInvalid",
			config:  Config{Namespace: "contracts", LibsDir: "contracts/libs", SkipPolicy: SkipExisting, Exclude: []string{"[a-"}},
			wantErr: ErrExcludeInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigWithDefaults(t *testing.T) {
	got := Config{Namespace: "vendor"}.WithDefaults()
	if got.Namespace != "vendor" {
		t.Fatalf("namespace overwritten: %q", got.Namespace)
	}
	if got.LibsDir != DefaultLibsDir {
		t.Fatalf("libs dir = %q, want %q", got.LibsDir, DefaultLibsDir)
	}
	if got.SkipPolicy != SkipExisting {
		t.Fatalf("skip policy = %q, want %q", got.SkipPolicy, SkipExisting)
	}
}

func TestConfigExcludePatterns(t *testing.T) {
	cfg := Config{Exclude: []string{"*.pyc"}}
	got := cfg.ExcludePatterns()
	want := []string{"__init__.py", "__pycache__", "*.pyc"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
