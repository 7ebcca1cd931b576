package pkg

import "github.com/google/uuid"

// GenerateGameID - returns a random (v4) uuid string.
func GenerateGameID() string {
	return uuid.NewString()
}
