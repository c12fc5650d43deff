package otp_test

import (
	"testing"

	"go-internmatch-backend/pkg/otp"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := otp.Generate()
		assert.NoError(t, err)
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "non-digit rune %q in code %s", r, code)
		}
		seen[code] = true
	}
	// 100 draws from a million values should not all collide
	assert.Greater(t, len(seen), 1)
}
