// Package services holds request-independent helpers: input normalization,
// token issuing and the Google profile fetch.
package services

import (
	"regexp"
	"strings"
)

var (
	emailPattern       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern       = regexp.MustCompile(`^\d+$`)
	arrivalDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	innerSpaces        = regexp.MustCompile(`\s+`)
	phoneSeparators    = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "", "+", "")
)

// CleanString removes NUL bytes and trims surrounding whitespace.
func CleanString(value string) string {
	return strings.TrimSpace(strings.ReplaceAll(value, "\x00", ""))
}

// CleanSingleLine collapses every run of whitespace to a single space.
func CleanSingleLine(value string) string {
	return innerSpaces.ReplaceAllString(CleanString(value), " ")
}

func CleanEmail(value string) string {
	return strings.ToLower(CleanString(value))
}

func IsValidEmail(value string) bool {
	return emailPattern.MatchString(CleanEmail(value))
}

// CleanPhone strips common separator characters only. Letters survive and make
// the result fail validation instead of being silently dropped.
func CleanPhone(value string) string {
	return phoneSeparators.Replace(CleanString(value))
}

func IsValidPhone(value string) bool {
	return phonePattern.MatchString(value)
}

func IsValidArrivalDate(value string) bool {
	return arrivalDatePattern.MatchString(value)
}

func NormalizeRole(value string) string {
	return strings.ToLower(CleanSingleLine(value))
}
