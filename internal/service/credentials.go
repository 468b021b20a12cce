package service

import (
	"math/rand"

	"github.com/set-night/cryptoshop/internal/config"
	"github.com/set-night/cryptoshop/internal/domain"
)

const (
	loginAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	digits           = "0123456789"
)

// GenerateCredentials returns quantity login/password pairs. Pairs are not
// checked for uniqueness.
func GenerateCredentials(quantity int) []domain.Credential {
	if quantity < 1 {
		return nil
	}
	creds := make([]domain.Credential, quantity)
	for i := range creds {
		creds[i] = domain.Credential{
			Login:    randomString(loginAlphabet, config.LoginLength),
			Password: randomString(passwordAlphabet, config.PasswordLength),
		}
	}
	return creds
}

// GenerateOrderID returns an 8-digit numeric order id used as the invoice payload.
func GenerateOrderID() string {
	return randomString(digits, config.OrderIDLength)
}

func randomString(alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}
