package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dok4everak47/aicoder/internal/logging"
	"go.uber.org/zap"
)

func TestNew_WritesTimestampedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.log")
	logger, err := logging.New(path)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("user input", zap.String("text", "hello"))
	_ = logger.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(b)
	if !strings.Contains(line, `"user input"`) {
		t.Fatalf("missing message in log line: %q", line)
	}
	if !strings.Contains(line, `"ts"`) {
		t.Fatalf("missing timestamp in log line: %q", line)
	}
}

func TestNew_AppendsAcrossHandles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.log")
	for i := 0; i < 2; i++ {
		logger, err := logging.New(path)
		if err != nil {
			t.Fatalf("new logger: %v", err)
		}
		logger.Info("session started")
		_ = logger.Sync()
	}
	b, _ := os.ReadFile(path)
	if got := strings.Count(string(b), "session started"); got != 2 {
		t.Fatalf("expected 2 appended lines, got %d", got)
	}
}

func TestPreview_TruncatesLongResults(t *testing.T) {
	long := strings.Repeat("x", 600)
	got := logging.Preview(long)
	if len([]rune(got)) != 503 { // 500 runes + "..."
		t.Fatalf("unexpected preview length: %d", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix: %q", got[len(got)-10:])
	}
}

func TestPreview_ShortStringUnchanged(t *testing.T) {
	if got := logging.Preview("short"); got != "short" {
		t.Fatalf("got %q", got)
	}
}
