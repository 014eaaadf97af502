// File: random.go
// Title: Secure String Generation Utilities
// Description: Implements secure random string generation for tokens and
//              identifiers. Uses crypto/rand for cryptographically secure
//              randomness.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-07-10
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation with secure random generation

package stringx

import (
	"crypto/rand"
	"math/big"
)

const (
	// Character sets for random string generation
	LettersLowercase = "abcdefghijklmnopqrstuvwxyz"
	LettersUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters          = LettersLowercase + LettersUppercase
	Digits           = "0123456789"
	Alphanumeric     = Letters + Digits

	// Safe characters for URLs and filenames (excluding ambiguous characters)
	URLSafe = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

	// Human-readable characters (excluding visually similar characters like 0, O, l, 1)
	HumanReadable = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// RandomString generates a cryptographically secure random string of the specified length
// using the provided character set. If charset is empty, it defaults to Alphanumeric.
func RandomString(length int, charset string) (string, error) {
	if length <= 0 {
		return "", nil
	}

	if charset == "" {
		charset = Alphanumeric
	}

	result := make([]byte, length)
	charsetLen := big.NewInt(int64(len(charset)))

	for i := 0; i < length; i++ {
		randomIndex, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", err
		}
		result[i] = charset[randomIndex.Int64()]
	}

	return string(result), nil
}

// RandomAlphanumeric generates a random alphanumeric string of the specified length.
// This is a convenience function that uses the Alphanumeric character set.
func RandomAlphanumeric(length int) (string, error) {
	return RandomString(length, Alphanumeric)
}

// RandomHex generates a random hexadecimal string of the specified length.
// The resulting string will contain only characters 0-9 and a-f.
func RandomHex(length int) (string, error) {
	return RandomString(length, "0123456789abcdef")
}

// RandomURLSafe generates a random URL-safe string of the specified length.
// The resulting string is safe to use in URLs and filenames.
func RandomURLSafe(length int) (string, error) {
	return RandomString(length, URLSafe)
}

// RandomHumanReadable generates a random human-readable string of the specified length.
// Excludes visually similar characters to reduce transcription errors.
func RandomHumanReadable(length int) (string, error) {
	return RandomString(length, HumanReadable)
}
