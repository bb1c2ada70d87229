package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir is t.Chdir from Go 1.24, reimplemented so the tests run on older
// toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("chdir back: %v", err)
		}
	})
}

func TestHandleMessageAppendsLogLine(t *testing.T) {
	chdir(t, t.TempDir())

	ev := CatalogChangeEvent{
		Entity:     "movie",
		Action:     ActionDeleted,
		Key:        "42",
		OccurredAt: "2024-05-01T12:00:00Z",
	}
	body, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if err := handleMessage(body); err != nil {
		t.Fatalf("handleMessage: %v", err)
	}

	data, err := os.ReadFile(filepath.Join("logs", "changes.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	for _, want := range []string{"entity=movie", "action=deleted", "key=42", "2024-05-01T12:00:00Z"} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line missing %q: %s", want, line)
		}
	}
}

func TestHandleMessageRejectsGarbage(t *testing.T) {
	chdir(t, t.TempDir())

	if err := handleMessage([]byte("{not json")); err == nil {
		t.Fatal("expected an unmarshal error")
	}
	if _, err := os.Stat("logs"); !os.IsNotExist(err) {
		t.Fatal("no log should be written for a rejected message")
	}
}
