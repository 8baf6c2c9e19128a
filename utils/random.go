package utils

import (
	"math/rand/v2"
	"strings"
)

const (
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// url-safe alphabet of video ids
	idAlphabet = letters + "0123456789-_"

	VideoIDLength = 11
)

func RandomString(length int) string {
	return randomFrom(letters, length)
}

// NewVideoID returns a random 11 character url-safe id.
func NewVideoID() string {
	return randomFrom(idAlphabet, VideoIDLength)
}

func randomFrom(charset string, length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(charset[rand.IntN(len(charset))])
	}
	return b.String()
}
