package logger

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		ErrorLevel: "ERROR",
		WarnLevel:  "WARN",
		InfoLevel:  "INFO",
		DebugLevel: "DEBUG",
		Level(-1):  "UNKNOWN",
		Level(4):   "UNKNOWN",
	}
	for level, want := range cases {
		assert.Equal(t, want, level.String(), "Level(%d)", int(level))
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{input: "0", want: ErrorLevel},
		{input: "1", want: WarnLevel},
		{input: "2", want: InfoLevel},
		{input: "3", want: DebugLevel},
		{input: "error", want: ErrorLevel},
		{input: "ERR", want: ErrorLevel},
		{input: "Warning", want: WarnLevel},
		{input: " info ", want: InfoLevel},
		{input: "DEBUG", want: DebugLevel},
		{input: "4", want: ErrorLevel, wantErr: true},
		{input: "trace", want: ErrorLevel, wantErr: true},
		{input: "", want: ErrorLevel, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			t.Parallel()
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownLevel)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every severity/threshold pair: active iff severity <= threshold.
func TestEnabled_AllCombinations(t *testing.T) {
	levels := []Level{ErrorLevel, WarnLevel, InfoLevel, DebugLevel}
	for _, threshold := range levels {
		l := New(Config{Level: threshold})
		for _, severity := range levels {
			assert.Equal(t, severity <= threshold, l.Enabled(severity),
				"severity %s, threshold %s", severity, threshold)
		}
	}
}

func TestNew_ClampsLevel(t *testing.T) {
	assert.Equal(t, ErrorLevel, New(Config{Level: Level(-3)}).Level())
	assert.Equal(t, DebugLevel, New(Config{Level: Level(9)}).Level())
}

func TestCompileTimeGates(t *testing.T) {
	assert.True(t, ErrorOn)
	assert.Equal(t, MaxLevel >= WarnLevel, WarnOn)
	assert.Equal(t, MaxLevel >= InfoLevel, InfoOn)
	assert.Equal(t, MaxLevel >= DebugLevel, DebugOn)
}

func TestParseColor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    ColorMode
		wantErr bool
	}{
		{input: "", want: ColorNever},
		{input: "false", want: ColorNever},
		{input: "never", want: ColorNever},
		{input: "0", want: ColorNever},
		{input: "TRUE", want: ColorAlways},
		{input: "always", want: ColorAlways},
		{input: "1", want: ColorAlways},
		{input: "auto", want: ColorAuto},
		{input: "sometimes", want: ColorNever, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			t.Parallel()
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownColor)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorMode_Enabled(t *testing.T) {
	assert.True(t, ColorAlways.Enabled(io.Discard, io.Discard))
	assert.False(t, ColorNever.Enabled(io.Discard, io.Discard))
	// Only *os.File can be a terminal.
	assert.False(t, ColorAuto.Enabled(io.Discard, io.Discard))
}
