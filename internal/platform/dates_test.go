package platform

import (
	"errors"
	"testing"
	"time"

	"github.com/aretw0/lsd/pkg/core"
)

func TestParseDate(t *testing.T) {
	// Wednesday
	now := time.Date(2025, time.March, 12, 15, 4, 5, 0, time.UTC)
	day := func(m time.Month, d int) time.Time {
		return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{input: "", want: day(time.March, 12)},
		{input: "today", want: day(time.March, 12)},
		{input: "Yesterday", want: day(time.March, 11)},
		{input: "tomorrow", want: day(time.March, 13)},
		{input: "2024-02-29", want: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{input: "2025_01_05", want: day(time.January, 5)},
		{input: "wednesday", want: day(time.March, 12)},
		{input: "Mon", want: day(time.March, 10)},
		{input: "friday", want: day(time.March, 7)},
		{input: "Thu", want: day(time.March, 6)},
		{input: "2024-02-30", wantErr: true},
		{input: "2025-13-01", wantErr: true},
		{input: "someday", wantErr: true},
		{input: "fr", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input, now)
			if tt.wantErr {
				if !errors.Is(err, core.ErrInvalidDate) {
					t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDate", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
