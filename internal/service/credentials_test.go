package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	loginRe    = regexp.MustCompile(`^[A-Z0-9]{8}$`)
	passwordRe = regexp.MustCompile(`^[a-zA-Z0-9]{12}$`)
	orderIDRe  = regexp.MustCompile(`^[0-9]{8}$`)
)

func TestGenerateCredentials(t *testing.T) {
	creds := GenerateCredentials(5)
	require.Len(t, creds, 5)
	for _, c := range creds {
		assert.Regexp(t, loginRe, c.Login)
		assert.Regexp(t, passwordRe, c.Password)
	}

	assert.Empty(t, GenerateCredentials(0))
}

func TestGenerateOrderID(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.Regexp(t, orderIDRe, GenerateOrderID())
	}
}
