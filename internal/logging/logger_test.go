package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sergeydigl3/do-runner-firewall/internal/logging"
)

func TestActionsHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.InitLogger("debug", "actions", &buf)

	logger.Info("Current IP: 203.0.113.5")
	logger.Info("[\n  {}\n]")
	logger.Debug("request", slog.Int("status", 204))
	logger.Warn("slow", slog.String("url", "https://ifconfig.me/ip"))
	logger.Error("failed")

	want := strings.Join([]string{
		"Current IP: 203.0.113.5",
		"[",
		"  {}",
		"]",
		"::debug::request status=204",
		"::warning::slow url=https://ifconfig.me/ip",
		"::error::failed",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestActionsHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.InitLogger("info", "actions", &buf)

	logger.Debug("hidden")
	logger.Info("shown")

	assert.Equal(t, "shown\n", buf.String())
}

func TestActionsHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.InitLogger("info", "actions", &buf).
		With(slog.String("mode", "add")).
		WithGroup("fw")

	logger.Info("Sent", slog.String("id", "fw-123"))

	assert.Equal(t, "Sent mode=add fw.id=fw-123\n", buf.String())
}

func TestInitLogger_Formats(t *testing.T) {
	var buf bytes.Buffer
	logging.InitLogger("info", "json", &buf).Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	logging.InitLogger("info", "text", &buf).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
