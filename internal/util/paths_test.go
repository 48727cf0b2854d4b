package util

import (
	"path/filepath"
	"testing"
)

func TestDataDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	if got := DataDir("meter"); got != filepath.Join("/tmp/xdg-data", "meter") {
		t.Fatalf("unexpected data dir %q", got)
	}
}

func TestInvoicesDirHonorsXDGDocuments(t *testing.T) {
	t.Setenv("XDG_DOCUMENTS_DIR", "/tmp/docs")
	if got := InvoicesDir("meter"); got != filepath.Join("/tmp/docs", "Meter", "Invoices") {
		t.Fatalf("unexpected invoices dir %q", got)
	}
}

func TestParseUserDir(t *testing.T) {
	data := `
# config
XDG_DESKTOP_DIR="$HOME/Desktop"
XDG_DOCUMENTS_DIR="$HOME/Docs"
`
	if got := parseUserDir(data, "XDG_DOCUMENTS_DIR"); got != "$HOME/Docs" {
		t.Fatalf("unexpected parsed dir %q", got)
	}
	if got := parseUserDir(data, "XDG_MUSIC_DIR"); got != "" {
		t.Fatalf("expected empty for missing key, got %q", got)
	}
}
