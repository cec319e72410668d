package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteRendersTemplates(t *testing.T) {
	dir := t.TempDir()
	created, err := Write(dir, Data{
		Brand:    "casa-italia",
		URL:      "https://casa.example",
		Endpoint: "https://cms.casa.example/graphql",
	})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created %v, want 2 files", created)
	}

	cfg, err := os.ReadFile(filepath.Join(dir, "showroom.yaml"))
	if err != nil {
		t.Fatalf("read showroom.yaml: %v", err)
	}
	for _, want := range []string{"brand: casa-italia", "url: https://casa.example", "endpoint: https://cms.casa.example/graphql"} {
		if !strings.Contains(string(cfg), want) {
			t.Errorf("showroom.yaml missing %q", want)
		}
	}

	env, err := os.ReadFile(filepath.Join(dir, ".env.example"))
	if err != nil {
		t.Fatalf("read .env.example: %v", err)
	}
	if !strings.Contains(string(env), "SHOWROOM_CMS__ENDPOINT=https://cms.casa.example/graphql") {
		t.Errorf(".env.example missing endpoint:\n%s", env)
	}
}

func TestWriteRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "showroom.yaml")
	if err := os.WriteFile(path, []byte("keep me"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Write(dir, Data{Brand: "foreverwell"})
	if !errors.Is(err, ErrExists) {
		t.Fatalf("err = %v, want ErrExists", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "keep me" {
		t.Fatalf("existing file overwritten: %q", got)
	}
}
