package password_test

import (
	"testing"

	"go-internmatch-backend/pkg/password"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCompare(t *testing.T) {
	hashed, err := password.Hash("s3cret")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret", hashed)

	assert.True(t, password.Compare(hashed, "s3cret"))
	assert.False(t, password.Compare(hashed, "wrong"))
	assert.False(t, password.Compare("not-a-hash", "s3cret"))
}
