package clock

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var isoMicro = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}$`)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "microseconds kept",
			in:   time.Date(2024, 3, 9, 7, 5, 1, 123456789, time.Local),
			want: "2024-03-09T07:05:01.123456",
		},
		{
			name: "zero fraction still padded",
			in:   time.Date(2024, 12, 31, 23, 59, 59, 0, time.Local),
			want: "2024-12-31T23:59:59.000000",
		},
		{
			name: "sub-microsecond truncated",
			in:   time.Date(2025, 1, 1, 0, 0, 0, 999, time.Local),
			want: "2025-01-01T00:00:00.000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, isoMicro, got)
		})
	}
}

func TestFormat_ConvertsToLocal(t *testing.T) {
	in := time.Date(2024, 6, 1, 12, 0, 0, 500000000, time.UTC)

	got, err := Format(in)
	require.NoError(t, err)
	assert.Equal(t, in.Local().Format(Layout), got)
}

func TestFormat_ZeroTime(t *testing.T) {
	_, err := Format(time.Time{})
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestNewTimeResponse(t *testing.T) {
	fixed := time.Date(2024, 3, 9, 7, 5, 1, 42000, time.Local)

	resp, err := NewTimeResponse(Func(func() time.Time { return fixed }))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09T07:05:01.000042", resp.CurrentTime)

	_, err = NewTimeResponse(Func(func() time.Time { return time.Time{} }))
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestSystem_Now(t *testing.T) {
	before := time.Now()
	got := System{}.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}
