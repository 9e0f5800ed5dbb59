package logger_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/reqs/internal/adapters/logger"
	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []logger.ErrorEntry
	}{
		{
			name: "standard error",
			err:  errors.New("simple error"),
			want: []logger.ErrorEntry{{Message: "simple error"}},
		},
		{
			name: "zerr chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			want: []logger.ErrorEntry{
				{Message: "outer layer"},
				{Message: "middle layer"},
				{Message: "root cause"},
			},
		},
		{
			name: "metadata stays on its level",
			err: zerr.With(
				zerr.Wrap(zerr.With(zerr.New("inner"), "inner_key", "inner_val"), "outer"),
				"outer_key", "outer_val",
			),
			want: []logger.ErrorEntry{
				{Message: "outer", Metadata: map[string]any{"outer_key": "outer_val"}},
				{Message: "inner", Metadata: map[string]any{"inner_key": "inner_val"}},
			},
		},
		{
			name: "metadata-only level is folded into its cause",
			err:  zerr.With(fmt.Errorf("%w: boom", domain.ErrFileRead), "path", "/a.js"),
			want: []logger.ErrorEntry{
				{Message: "failed to read source file: boom", Metadata: map[string]any{"path": "/a.js"}},
			},
		},
		{
			name: "nil",
			err:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorEntriesExported(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "caused by",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata sorted alphabetically",
			entries: []logger.ErrorEntry{
				{Message: "error", Metadata: map[string]any{"zebra": "z", "alpha": "a", "mike": 3}},
			},
			want: "Error: error\n       alpha: a\n       mike: 3\n       zebra: z",
		},
		{
			name: "metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"path": "/x"}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      path: /x",
		},
		{
			name:    "multiline cause",
			entries: []logger.ErrorEntry{{Message: "main"}, {Message: "cause line1\ncause line2"}},
			want:    "Error: main\n\n  Caused by:\n    → cause line1\n      cause line2",
		},
		{
			name:    "empty",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}
