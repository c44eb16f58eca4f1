// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package redaction masks personal data before it reaches the logs.
package redaction

import "strings"

// RedactEmail keeps the first character of the local part and the full domain:
// "jane.doe@moj.gov.et" becomes "j***@moj.gov.et".
func RedactEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return Redact(email)
	}
	return email[:1] + "***" + email[at:]
}

// RedactEmails applies RedactEmail to every address.
func RedactEmails(emails []string) []string {
	redacted := make([]string, len(emails))
	for i, email := range emails {
		redacted[i] = RedactEmail(email)
	}
	return redacted
}

// Redact masks an arbitrary value, keeping only its first character.
func Redact(value string) string {
	if value == "" {
		return ""
	}
	return value[:1] + "***"
}
