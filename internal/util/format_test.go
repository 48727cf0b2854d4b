package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{90 * time.Minute, "1h 30m"},
		{2*time.Hour + 5*time.Minute, "2h 05m"},
		{12*time.Minute + 30*time.Second, "12m 30s"},
		{0, "0m 00s"},
		{-time.Minute, "0m 00s"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.d); got != tc.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{25 * time.Minute, "25:00"},
		{4*time.Minute + 7*time.Second, "04:07"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{-time.Second, "00:00"},
	}
	for _, tc := range cases {
		if got := FormatClock(tc.d); got != tc.want {
			t.Fatalf("FormatClock(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}
