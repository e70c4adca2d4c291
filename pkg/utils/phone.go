package utils

import "strings"

// CleanPhone reduces a phone number to its digits. Every cache key and
// remote lookup uses this form; rows written by older app versions may
// still carry punctuation or a country code, see PhoneVariants.
func CleanPhone(phone string) string {
	if phone == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PhoneVariants returns the cleaned number plus its with/without "55"
// country-code counterpart. Historical rows were stored under either form.
func PhoneVariants(phone string) []string {
	clean := CleanPhone(phone)
	variants := []string{clean}
	if strings.HasPrefix(clean, "55") && len(clean) > 10 {
		variants = append(variants, clean[2:])
	} else if len(clean) <= 11 {
		variants = append(variants, "55"+clean)
	}
	return variants
}
