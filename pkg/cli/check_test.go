/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckVersions(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []string
		workers int
		wantOK  []bool
		errMsgs map[int]string
	}{
		{
			name:    "all valid",
			inputs:  []string{"1.2.3", "0.1.0-alpha", "2.0.0+build.7"},
			workers: 2,
			wantOK:  []bool{true, true, true},
		},
		{
			name:    "mixed results preserve order",
			inputs:  []string{"1.2.3", "1.0", "2.0.0"},
			workers: 2,
			wantOK:  []bool{true, false, true},
			errMsgs: map[int]string{1: "Expected delimiter at offset 3"},
		},
		{
			name:    "empty string input",
			inputs:  []string{""},
			workers: 1,
			wantOK:  []bool{false},
			errMsgs: map[int]string{0: "Expected major version number at offset 0"},
		},
		{
			name:    "more inputs than workers",
			inputs:  []string{"1.0.0", "2.0.0", "3.0.0", "4.0.0", "5.0.0"},
			workers: 2,
			wantOK:  []bool{true, true, true, true, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := checkVersions(context.Background(), tt.inputs, tt.workers)
			if err != nil {
				t.Fatalf("checkVersions() unexpected error: %v", err)
			}
			if len(results) != len(tt.inputs) {
				t.Fatalf("got %d results, want %d", len(results), len(tt.inputs))
			}

			for i, res := range results {
				if res.input != tt.inputs[i] {
					t.Errorf("results[%d].input = %q, want %q (order not preserved)", i, res.input, tt.inputs[i])
				}
				if ok := res.err == nil; ok != tt.wantOK[i] {
					t.Errorf("results[%d] ok = %v, want %v (err: %v)", i, ok, tt.wantOK[i], res.err)
				}
				if msg, found := tt.errMsgs[i]; found {
					if res.err == nil || !strings.Contains(res.err.Error(), msg) {
						t.Errorf("results[%d].err = %v, want error containing %q", i, res.err, msg)
					}
				}
			}
		})
	}
}

func TestCheckVersions_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := checkVersions(ctx, []string{"1.2.3", "2.0.0"}, 2)
	if err == nil {
		t.Error("expected error from canceled context")
	}
}

func TestLoadVersionInputs(t *testing.T) {
	tmpDir := t.TempDir()

	jsonPath := filepath.Join(tmpDir, "versions.json")
	if err := os.WriteFile(jsonPath, []byte(`["1.2.3","2.0.0-rc.1"]`), 0o644); err != nil {
		t.Fatalf("failed to write json fixture: %v", err)
	}

	yamlPath := filepath.Join(tmpDir, "versions.yaml")
	if err := os.WriteFile(yamlPath, []byte("- 1.2.3\n- oops\n"), 0o644); err != nil {
		t.Fatalf("failed to write yaml fixture: %v", err)
	}

	badPath := filepath.Join(tmpDir, "bad.json")
	if err := os.WriteFile(badPath, []byte(`{not json`), 0o644); err != nil {
		t.Fatalf("failed to write bad fixture: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		want    []string
		wantErr bool
	}{
		{
			name: "json file",
			path: jsonPath,
			want: []string{"1.2.3", "2.0.0-rc.1"},
		},
		{
			name: "yaml file",
			path: yamlPath,
			want: []string{"1.2.3", "oops"},
		},
		{
			name:    "missing file",
			path:    filepath.Join(tmpDir, "nope.json"),
			wantErr: true,
		},
		{
			name:    "malformed content",
			path:    badPath,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loadVersionInputs(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("loadVersionInputs(%q) expected error, got %v", tt.path, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadVersionInputs(%q) unexpected error: %v", tt.path, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d inputs, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("inputs[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantErr   bool
		errMsg    string
		wantLines []string
	}{
		{
			name:      "all valid",
			args:      []string{"check", "1.2.3", "2.0.0-rc.1"},
			wantLines: []string{"1.2.3: ok", "2.0.0-rc.1: ok"},
		},
		{
			name:      "one invalid",
			args:      []string{"check", "1.2.3", "1.0"},
			wantErr:   true,
			errMsg:    "1 of 2 versions failed validation",
			wantLines: []string{"1.2.3: ok", "1.0: Expected delimiter at offset 3"},
		},
		{
			name:    "no inputs",
			args:    []string{"check"},
			wantErr: true,
			errMsg:  "no version strings to check",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			root := rootCmd()
			root.Writer = &buf

			err := root.Run(context.Background(), append([]string{"vbctl"}, tt.args...))

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got nil")
				}
				if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error = %v, want error containing %q", err, tt.errMsg)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := buf.String()
			for _, line := range tt.wantLines {
				if !strings.Contains(got, line) {
					t.Errorf("output missing line %q, got:\n%s", line, got)
				}
			}
		})
	}
}

func TestCheckCommand_InputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.yaml")
	if err := os.WriteFile(path, []byte("- 1.2.3\n- oops\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	var buf bytes.Buffer
	root := rootCmd()
	root.Writer = &buf

	err := root.Run(context.Background(), []string{"vbctl", "check", "--input", path})
	if err == nil {
		t.Fatal("expected error for invalid version in input file")
	}
	if !strings.Contains(err.Error(), "1 of 2 versions failed validation") {
		t.Errorf("error = %v, want failure summary", err)
	}
	if !strings.Contains(buf.String(), "oops: Expected major version number at offset 0") {
		t.Errorf("output missing diagnostic line, got:\n%s", buf.String())
	}
}
