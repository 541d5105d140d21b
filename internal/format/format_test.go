package format

import (
	"testing"
	"time"
)

func TestCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		locale string
		want   string
	}{
		{1234.5, "en", "Rs. 1,234.50"},
		{1234.5, "si", "රු. 1,234.50"},
		{1234.5, "ta", "ரூ. 1,234.50"},
		{0, "en", "Rs. 0.00"},
		{1500000, "en", "Rs. 1,500,000.00"},
		{99.999, "en", "Rs. 100.00"},
		{1234.5, "unknown", "Rs. 1,234.50"},
	}

	for _, tc := range cases {
		got := Currency(tc.amount, tc.locale)
		if got != tc.want {
			t.Errorf("Currency(%v, %q) = %q, want %q", tc.amount, tc.locale, got, tc.want)
		}
	}
}

func TestPercentage(t *testing.T) {
	if got := Percentage(12.5); got != "12.5%" {
		t.Fatalf("Percentage(12.5) = %q", got)
	}
	if got := Percentage(0); got != "0.0%" {
		t.Fatalf("Percentage(0) = %q", got)
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-90 * time.Second), "1 minute ago"},
		{now.Add(-30 * time.Minute), "30 minutes ago"},
		{now.Add(-90 * time.Minute), "1 hour ago"},
		{now.Add(-5 * time.Hour), "5 hours ago"},
		{now.Add(-30 * time.Hour), "1 day ago"},
		{now.Add(-3 * 24 * time.Hour), "3 days ago"},
		{now.Add(-30 * 24 * time.Hour), "15 Jun 2025"},
	}

	for _, tc := range cases {
		if got := RelativeTime(tc.at, now); got != tc.want {
			t.Errorf("RelativeTime(%v) = %q, want %q", tc.at, got, tc.want)
		}
	}
}

func TestFileSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
		{1 << 40, "1.0 TB"},
		{1 << 50, "1.0 PB"},
		{1 << 60, "1.0 EB"},
	}
	for _, tc := range cases {
		if got := FileSize(tc.bytes); got != tc.want {
			t.Errorf("FileSize(%d) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}

func TestDateTime(t *testing.T) {
	at := time.Date(2025, 1, 9, 14, 30, 0, 0, time.UTC)
	if got := Date(at); got != "09 Jan 2025" {
		t.Fatalf("Date = %q", got)
	}
	if got := Time(at); got != "02:30 PM" {
		t.Fatalf("Time = %q", got)
	}
}
