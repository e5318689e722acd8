package Billing

import "strings"

var belowTwenty = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
	"Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}

// NumberToWords renders a non-negative rupee amount as an English phrase in
// the Indian numbering system (crore/lakh/thousand), suffixed "Rupees Only".
// Zero maps to "Zero Rupees Only"; a negative amount maps to an empty string.
// The caller is expected to round to a whole rupee first.
func NumberToWords(amount int) string {
	if amount == 0 {
		return "Zero Rupees Only"
	}
	if amount < 0 {
		return ""
	}

	crore := amount / 10000000
	amount %= 10000000
	lakh := amount / 100000
	amount %= 100000
	thousand := amount / 1000
	remaining := amount % 1000

	var b strings.Builder
	if crore > 0 {
		b.WriteString(groupToWords(crore) + " Crore ")
	}
	if lakh > 0 {
		b.WriteString(groupToWords(lakh) + " Lakh ")
	}
	if thousand > 0 {
		b.WriteString(groupToWords(thousand) + " Thousand ")
	}
	if remaining > 0 {
		b.WriteString(groupToWords(remaining))
	}

	// Collapse any doubled spaces left by empty groups.
	return strings.Join(strings.Fields(b.String()+" Rupees Only"), " ")
}

// groupToWords handles one group in the range 0-999. Anything larger renders
// as an empty string, matching the group bounds of the numbering scheme.
func groupToWords(n int) string {
	switch {
	case n == 0:
		return ""
	case n < 20:
		return belowTwenty[n]
	case n < 100:
		word := tensWords[n/10]
		if n%10 != 0 {
			word += " " + belowTwenty[n%10]
		}
		return word
	case n < 1000:
		word := belowTwenty[n/100] + " Hundred"
		if n%100 != 0 {
			word += " " + groupToWords(n%100)
		}
		return word
	default:
		return ""
	}
}
