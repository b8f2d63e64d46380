package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"testing"
)

const botToken = "123456:TEST-BOT-TOKEN"

// signFields reproduces the widget's signing side so tests can mint
// payloads that must verify.
func signFields(fields map[string]string, token string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, fields[k]))
	}

	secret := sha256.Sum256([]byte(token))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(strings.Join(pairs, "\n")))
	return hex.EncodeToString(mac.Sum(nil))
}

func validPayload() map[string]string {
	fields := map[string]string{
		"id":         "4242",
		"first_name": "Alice",
		"last_name":  "Liddell",
		"username":   "alice",
		"photo_url":  "https://t.me/i/userpic/320/alice.jpg",
		"auth_date":  "1724800000",
	}
	fields["hash"] = signFields(fields, botToken)
	return fields
}

func TestVerify_ValidPayload(t *testing.T) {
	if !Verify(validPayload(), botToken) {
		t.Fatal("well-signed payload must verify")
	}
}

func TestVerify_Deterministic(t *testing.T) {
	fields := validPayload()
	for i := 0; i < 10; i++ {
		if !Verify(fields, botToken) {
			t.Fatalf("verification flipped on repeat %d", i)
		}
	}
}

func TestVerify_TamperedFieldFlips(t *testing.T) {
	for field := range validPayload() {
		fields := validPayload()
		fields[field] = fields[field] + "x"
		if Verify(fields, botToken) {
			t.Fatalf("tampering with %q must fail verification", field)
		}
	}
}

func TestVerify_MissingHash(t *testing.T) {
	fields := validPayload()
	delete(fields, "hash")
	if Verify(fields, botToken) {
		t.Fatal("payload without hash must not verify")
	}
}

func TestVerify_WrongBotToken(t *testing.T) {
	if Verify(validPayload(), "999999:OTHER-TOKEN") {
		t.Fatal("payload signed for another bot must not verify")
	}
}

func TestVerify_MinimalFieldSet(t *testing.T) {
	// optional profile fields absent: only what Telegram always sends
	fields := map[string]string{
		"id":        "7",
		"auth_date": "1724800000",
	}
	fields["hash"] = signFields(fields, botToken)

	if !Verify(fields, botToken) {
		t.Fatal("minimal payload must verify")
	}
}
