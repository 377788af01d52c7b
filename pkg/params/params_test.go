package params_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-natvisgen/pkg/params"
)

func TestLoad_Formats(t *testing.T) {
	cases := map[string]string{
		"params.json":  `{"version": "1.2.3", "project": "fkYAML"}`,
		"params.yaml":  "version: \"1.2.3\"\nproject: fkYAML\n",
		"params.yml":   "version: 1.2.3\nproject: fkYAML\n",
		"params.toml":  "version = \"1.2.3\"\nproject = \"fkYAML\"\n",
		"params.conf":  `{"version": "1.2.3", "project": "fkYAML"}`,
		"params.other": "version: 1.2.3\nproject: fkYAML\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, content)

			got, err := params.Load(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			want := params.Params{
				Version: "1.2.3",
				Values:  map[string]any{"version": "1.2.3", "project": "fkYAML"},
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("params mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_VersionIsNotValidated(t *testing.T) {
	path := writeFile(t, "params.json", `{"version": "not-a-version"}`)

	got, err := params.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Version != "not-a-version" {
		t.Fatalf("version = %q", got.Version)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := params.Load(filepath.Join(dir, "absent.json"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("expected fs.ErrNotExist, got %v", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if _, err := params.Load("  "); err == nil {
			t.Fatal("expected error for empty path")
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, "params.json", "  \n")
		_, err := params.Load(path)
		if err == nil || !strings.Contains(err.Error(), "is empty") {
			t.Fatalf("expected empty file error, got %v", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeFile(t, "params.json", `{"version": `)
		if _, err := params.Load(path); err == nil {
			t.Fatal("expected parse error")
		}
	})

	t.Run("malformed json with unknown extension", func(t *testing.T) {
		for _, content := range []string{`{"version": 1.2.3}`, `[1.2.3]`} {
			path := writeFile(t, "params.conf", content)
			_, err := params.Load(path)
			if err == nil || !strings.Contains(err.Error(), "params: parse") {
				t.Fatalf("expected parse error for %q, got %v", content, err)
			}
		}
	})

	t.Run("missing version", func(t *testing.T) {
		path := writeFile(t, "params.json", `{"name": "fkYAML"}`)
		_, err := params.Load(path)
		if !errors.Is(err, params.ErrVersionRequired) {
			t.Fatalf("expected ErrVersionRequired, got %v", err)
		}
	})

	t.Run("non string version", func(t *testing.T) {
		path := writeFile(t, "params.json", `{"version": 1.2}`)
		_, err := params.Load(path)
		if err == nil || !strings.Contains(err.Error(), "must be a string") {
			t.Fatalf("expected type error, got %v", err)
		}
	})
}

func TestWrite_RoundTripsEachFormat(t *testing.T) {
	for _, name := range []string{"params.json", "params.yaml", "params.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			in := params.Params{Version: "0.4.2", Values: map[string]any{"project": "fkYAML"}}

			if err := params.Write(path, in); err != nil {
				t.Fatalf("write: %v", err)
			}
			out, err := params.Load(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if out.Version != "0.4.2" || out.Values["project"] != "fkYAML" {
				t.Fatalf("unexpected params %+v", out)
			}
		})
	}
}

func TestWrite_JSONLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	if err := params.Write(path, params.Params{Version: "1.2.3"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "{\n  \"version\": \"1.2.3\"\n}\n"
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Fatalf("json layout mismatch (-want +got):\n%s", diff)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}
