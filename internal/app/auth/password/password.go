package password

import "github.com/alexedwards/argon2id"

var params = &argon2id.Params{
	Memory:      64 * 1024, // 64 MiB
	Iterations:  2,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

// Hash derives a salted argon2id hash of the raw password. The raw value
// never leaves this package in any other form.
func Hash(raw string) (string, error) {
	return argon2id.CreateHash(raw, params)
}

// Verify reports whether raw matches the stored hash. Comparison is
// constant-time inside argon2id.
func Verify(raw, hash string) (bool, error) {
	return argon2id.ComparePasswordAndHash(raw, hash)
}
