package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogger_TextFormat_SortedKeysAndLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatText, App: "pet-admin", Writer: &buf})

	l.Debug("hidden", nil)
	l.Info("owner listed", Fields{"count": 2})

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry should be filtered, got %q", out)
	}
	if !strings.Contains(out, "app=pet-admin count=2 level=info msg=owner listed") {
		t.Fatalf("unexpected text line: %q", out)
	}
}

func TestLogger_JSONFormat_WithFieldsAndErrors(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, Writer: &buf}).
		With(Fields{"request_id": "r-1"})

	l.Error("backend failed", Fields{"err": errors.New("boom")})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json line: %v (%q)", err, buf.String())
	}
	if entry["request_id"] != "r-1" || entry["err"] != "boom" || entry["level"] != "error" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if ParseLevel("WARNING") != Warn || ParseLevel("nope") != Info {
		t.Fatalf("ParseLevel mismatch")
	}
	if ParseFormat("JSON") != FormatJSON || ParseFormat("") != FormatText {
		t.Fatalf("ParseFormat mismatch")
	}
}
