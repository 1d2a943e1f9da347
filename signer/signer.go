package signer

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// Sign hashes the values concatenated in the given order with the secret
// appended. No delimiters are inserted, so the order and textual form of every
// value must match what the gateway hashes on its side.
func Sign(values []string, secret string) string {
	sb := strings.Builder{}
	for _, value := range values {
		sb.WriteString(value)
	}
	sb.WriteString(secret)
	sum := sha1.Sum([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

func Verify(values []string, secret string, sign string) bool {
	if sign == "" {
		return false
	}
	expected := Sign(values, secret)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(sign)) == 1
}
