//
// Tencent is pleased to support the open source community by making truncjson available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// truncjson is licensed under the Apache License Version 2.0.
//
//

package log

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

// TestSetLevel verifies that SetLevel correctly updates the underlying zap
// atomic level according to the provided level string, falling back to info
// for unknown levels.
func TestSetLevel(t *testing.T) {
	cases := []struct {
		in       string
		expected zapcore.Level
	}{
		{LevelDebug, zapcore.DebugLevel},
		{LevelInfo, zapcore.InfoLevel},
		{LevelWarn, zapcore.WarnLevel},
		{LevelError, zapcore.ErrorLevel},
		{LevelFatal, zapcore.FatalLevel},
		{"unknown", zapcore.InfoLevel}, // default branch
	}

	for _, c := range cases {
		SetLevel(c.in)
		if got := zapLevel.Level(); got != c.expected {
			t.Fatalf("SetLevel(%q) = %v, want %v", c.in, got, c.expected)
		}
	}
	SetLevel(LevelInfo)
}

// TestPackageHelpersDelegateToDefault verifies the package helpers forward to
// the configured Default logger.
func TestPackageHelpersDelegateToDefault(t *testing.T) {
	original := Default
	defer func() {
		Default = original
	}()

	logger := &countLogger{}
	Default = logger

	Debug("test")
	Debugf("test %d", 1)
	Info("test")
	Infof("test %d", 1)
	Warn("test")
	Warnf("test %d", 1)
	Error("test")
	Errorf("test %d", 1)
	Fatal("test")
	Fatalf("test %d", 1)

	if logger.calls != 10 {
		t.Fatalf("expected 10 calls, got %d", logger.calls)
	}
}

type countLogger struct {
	calls int
}

func (l *countLogger) Debug(args ...any)                 { l.calls++ }
func (l *countLogger) Debugf(format string, args ...any) { l.calls++ }
func (l *countLogger) Info(args ...any)                  { l.calls++ }
func (l *countLogger) Infof(format string, args ...any)  { l.calls++ }
func (l *countLogger) Warn(args ...any)                  { l.calls++ }
func (l *countLogger) Warnf(format string, args ...any)  { l.calls++ }
func (l *countLogger) Error(args ...any)                 { l.calls++ }
func (l *countLogger) Errorf(format string, args ...any) { l.calls++ }
func (l *countLogger) Fatal(args ...any)                 { l.calls++ }
func (l *countLogger) Fatalf(format string, args ...any) { l.calls++ }
