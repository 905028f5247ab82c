// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "warning", "test")
	log.Info("hidden message")
	log.Warningf("column %q skipped", "fare")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("info message logged at warning level:\n%s", out)
	}
	if !strings.Contains(out, `column "fare" skipped`) || !strings.Contains(out, "WARNING") || !strings.Contains(out, "test:") {
		t.Errorf("warning missing from output:\n%s", out)
	}
}

func TestNewLoggerUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "chatty", "test")
	log.Debug("hidden message")
	log.Info("visible message")

	out := buf.String()
	if strings.Contains(out, "hidden message") || !strings.Contains(out, "visible message") {
		t.Errorf("unknown level did not fall back to INFO:\n%s", out)
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		d       time.Duration
		h, m, s uint32
	}{
		{0, 0, 0, 0},
		{1400 * time.Millisecond, 0, 0, 1},
		{60 * time.Second, 0, 1, 0},
		{3*time.Hour + 61*time.Second, 3, 1, 1},
	}
	for _, tt := range tests {
		h, m, s := ParseTime(tt.d)
		if h != tt.h || m != tt.m || s != tt.s {
			t.Errorf("ParseTime(%v) = %d:%d:%d, want %d:%d:%d", tt.d, h, m, s, tt.h, tt.m, tt.s)
		}
	}
}
