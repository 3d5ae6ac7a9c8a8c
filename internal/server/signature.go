package server

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// verifySignature checks the gateway's base64 HMAC-SHA256 of the raw
// request body
func verifySignature(secret string, body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// secretTokenMatches compares Telegram's echoed secret token in
// constant time
func secretTokenMatches(got, want string) bool {
	return hmac.Equal([]byte(got), []byte(want))
}
