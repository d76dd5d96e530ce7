package utils

import (
	"crypto/rand"
	"math/big"
)

const tokenCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomToken returns a short alphanumeric code, used for
// password-reset mails. The codes are secrets, so bytes come from
// crypto/rand.
func GenerateRandomToken(length int) string {
	token := make([]byte, length)
	for i := range token {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(tokenCharset))))
		if err != nil {
			panic(err) // crypto/rand is unavailable, nothing sane to return
		}
		token[i] = tokenCharset[n.Int64()]
	}
	return string(token)
}
