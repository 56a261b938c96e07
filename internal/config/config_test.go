package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "hif.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadValidManifest(t *testing.T) {
	path := writeManifest(t, `
[translate]
from = "rtl"
to = "tlm"
in = "design.xml"
out = "design.tlm.xml"

[process]
clocks = ["clk"]
resets = ["rst"]
concurrent = true
split = true
`)

	job, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if job.Translate.From != "rtl" || job.Translate.To != "tlm" {
		t.Fatalf("unexpected translate config: %+v", job.Translate)
	}
	if !job.Process.Concurrent || !job.Process.Split {
		t.Fatalf("expected concurrent and split to be true, got %+v", job.Process)
	}

	src, err := job.Source()
	if err != nil || src.Name() != "RTL" {
		t.Fatalf("Source() = %v, %v, want RTL", src, err)
	}
	dst, err := job.Destination()
	if err != nil || dst.Name() != "TLM" {
		t.Fatalf("Destination() = %v, %v, want TLM", dst, err)
	}
}

func TestLoadRejectsMissingKeys(t *testing.T) {
	path := writeManifest(t, `
[translate]
from = "rtl"
to = "tlm"
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for a manifest missing in/out")
	}
}

func TestLoadRejectsUnknownSemantics(t *testing.T) {
	path := writeManifest(t, `
[translate]
from = "rtl"
to = "vhdl-2008"
in = "design.xml"
out = "design.out.xml"
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for an unknown destination semantics")
	}
}
