package Billing

import (
	"strings"
	"testing"
)

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "Zero Rupees Only"},
		{1, "One Rupees Only"},
		{7, "Seven Rupees Only"},
		{13, "Thirteen Rupees Only"},
		{20, "Twenty Rupees Only"},
		{45, "Forty Five Rupees Only"},
		// Hundreds group must not render a trailing Zero.
		{100, "One Hundred Rupees Only"},
		{505, "Five Hundred Five Rupees Only"},
		{999, "Nine Hundred Ninety Nine Rupees Only"},
		{1000, "One Thousand Rupees Only"},
		{1160, "One Thousand One Hundred Sixty Rupees Only"},
		// Grouping boundaries: 12,34,567 in Indian notation.
		{1234567, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven Rupees Only"},
		{100000, "One Lakh Rupees Only"},
		{10000000, "One Crore Rupees Only"},
		{10000560, "One Crore Five Hundred Sixty Rupees Only"},
		{20304050, "Two Crore Three Lakh Four Thousand Fifty Rupees Only"},
		{-5, ""},
	}
	for _, tt := range tests {
		got := NumberToWords(tt.amount)
		if got != tt.want {
			t.Errorf("NumberToWords(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestNumberToWordsNoDoubleSpaces(t *testing.T) {
	amounts := []int{1, 100, 1000, 100000, 10000000, 10000560, 1234567, 90909090}
	for _, amount := range amounts {
		got := NumberToWords(amount)
		if strings.Contains(got, "  ") {
			t.Errorf("NumberToWords(%d) = %q contains a double space", amount, got)
		}
		if got != strings.TrimSpace(got) {
			t.Errorf("NumberToWords(%d) = %q has surrounding whitespace", amount, got)
		}
	}
}
