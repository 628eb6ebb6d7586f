package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_FallsBackOnUnknownLevel(t *testing.T) {
	l := New("chatty", "json", &bytes.Buffer{})
	if l.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected info level, got %s", l.GetLevel())
	}
}

func TestLogError_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := New("debug", "json", &buf)

	LogError(l, "service", "PreviewOrder", "load snapshot", map[string]string{"distributor": "d-1"}, errors.New("boom"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "boom" {
		t.Fatalf("expected msg boom, got %v", entry["msg"])
	}
	if entry["module"] != "service" || entry["funcName"] != "PreviewOrder" {
		t.Fatalf("missing module fields: %v", entry)
	}
	if _, ok := entry["data"]; !ok {
		t.Fatalf("expected data field: %v", entry)
	}
}
