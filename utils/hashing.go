package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"video-sharing/models"
)

const passwordCost = bcrypt.DefaultCost

var ErrHashingFailed = errors.New("hashing failed")

// HashPassword rejects passwords bcrypt would silently truncate.
func HashPassword(pass string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pass), passwordCost)
	switch {
	case errors.Is(err, bcrypt.ErrPasswordTooLong):
		return "", models.NewError(models.KindValidation, "password too long", err)
	case err != nil:
		return "", models.Internal("failed to hash password", errors.Join(err, ErrHashingFailed))
	}
	return string(hash), nil
}

func CheckPassword(hash, pass string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass)) == nil
}
