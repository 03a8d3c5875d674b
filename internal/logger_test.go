package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitLogger_FileAndLevel(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)
	defer logrus.SetLevel(logrus.InfoLevel)

	fp := filepath.Join(t.TempDir(), "app.log")
	InitLogger(fp, "debug")
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %s", logrus.GetLevel())
	}
	logrus.Debug("hello from test")

	b, err := os.ReadFile(fp)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "hello from test") {
		t.Fatalf("log line missing: %q", b)
	}
}

func TestInitLogger_UnknownLevel(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)
	InitLogger("", "loud")
	if logrus.GetLevel() != logrus.WarnLevel {
		t.Fatalf("expected warn fallback, got %s", logrus.GetLevel())
	}
}
