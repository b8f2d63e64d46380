package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// Verify checks a login-widget payload against the bot token, per
// https://core.telegram.org/widgets/login#checking-authorization.
// fields is the raw payload including its "hash" entry; an absent hash
// simply fails the comparison.
func Verify(fields map[string]string, botToken string) bool {
	received := fields["hash"]

	// data-check-string: every field except hash, sorted, joined with \n
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "hash" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(fields[k])
	}

	// secret = SHA256(botToken)
	secret := sha256.Sum256([]byte(botToken))

	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(sb.String()))
	computed := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(computed), []byte(received))
}
