package testutils

import (
	"time"

	"github.com/google/uuid"

	"userbase/models"
)

func CreateTestUser() *models.User {
	return CreateTestUserWithName("user-" + uuid.NewString()[:8])
}

func CreateTestUserWithName(username string) *models.User {
	issued := time.Now().UTC().Truncate(time.Second)
	return &models.User{
		Username:   username,
		Passhash:   "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z1/q0M2mhPC2lBs7o7ggVjcu",
		Token:      uuid.NewString(),
		IssuedDate: &issued,
	}
}
