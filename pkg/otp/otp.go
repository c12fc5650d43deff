package otp

import "crypto/rand"

// Generate returns a 6-digit numeric code. Leading zeros are preserved:
// the code is a string, not a number.
func Generate() (string, error) {
	const codeLength = 6
	const digits = "0123456789"
	code := make([]byte, codeLength)
	if _, err := rand.Read(code); err != nil {
		return "", err
	}
	for i := 0; i < codeLength; i++ {
		code[i] = digits[code[i]%10]
	}
	return string(code), nil
}
