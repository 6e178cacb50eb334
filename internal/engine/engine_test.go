package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Quant-link/QLK-Contract-Quard/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestScanDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.rs", "use near_sdk::near_bindgen;\n\npub fn run() {}\n")
	writeFile(t, dir, "bad.rs", "fn broken( {\n")
	writeFile(t, dir, "ignored.txt", "not rust")

	eng := New()
	result, err := eng.Scan(context.Background(), model.ScanRequest{Path: dir, NoCache: true})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(result.Reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(result.Reports))
	}

	// sorted by path: bad.rs before good.rs
	bad := result.Reports[0]
	if !strings.HasSuffix(bad.File, "bad.rs") {
		t.Fatalf("expected bad.rs first, got %q", bad.File)
	}
	if !bad.Report.ParseFailed() || bad.Report.ContractType != model.ContractUnknown {
		t.Fatalf("expected failed parse for bad.rs, got %+v", bad.Report)
	}

	good := result.Reports[1]
	if good.Report.ParseFailed() {
		t.Fatalf("unexpected errors for good.rs: %v", good.Report.Errors)
	}
	if good.Report.ContractType != model.ContractNear {
		t.Fatalf("expected near classification, got %q", good.Report.ContractType)
	}
	if len(good.Report.Functions) != 1 || good.Report.Functions[0].Name != "run" {
		t.Fatalf("unexpected functions: %+v", good.Report.Functions)
	}
	if good.Fingerprint == "" || good.Fingerprint == bad.Fingerprint {
		t.Fatal("fingerprints must be set and distinct")
	}
}

func TestScanSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "one.rs", "struct Unit;\n")

	eng := New()
	result, err := eng.Scan(context.Background(), model.ScanRequest{Path: path, NoCache: true})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(result.Reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(result.Reports))
	}
	if len(result.Reports[0].Report.Structs) != 1 {
		t.Fatalf("expected 1 struct, got %+v", result.Reports[0].Report.Structs)
	}
}

func TestScanMemoizesIdenticalContent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.rs", "pub fn twin() {}\n")
	writeFile(t, dir, "b.rs", "pub fn twin() {}\n")

	eng := New()
	result, err := eng.Scan(context.Background(), model.ScanRequest{Path: dir, NoCache: true})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(result.Reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(result.Reports))
	}
	for _, fr := range result.Reports {
		if len(fr.Report.Functions) != 1 || fr.Report.Functions[0].Name != "twin" {
			t.Fatalf("unexpected report for %s: %+v", fr.File, fr.Report.Functions)
		}
	}
}

func TestDiscoverFilesExcludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.rs", "")
	writeFile(t, dir, filepath.Join("target", "skip.rs"), "")

	files, err := discoverFiles(dir, []string{"target/"})
	if err != nil {
		t.Fatalf("discoverFiles returned error: %v", err)
	}
	if len(files) != 1 || !strings.HasSuffix(files[0], "keep.rs") {
		t.Fatalf("unexpected files: %v", files)
	}
}
