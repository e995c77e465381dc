package utils

import (
	"testing"

	"carepulse-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func validCreateUser() *requests.CreateUser {
	return &requests.CreateUser{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "+15551234567",
	}
}

func TestValidateVarCustomTags(t *testing.T) {
	t.Run("phone_number", func(t *testing.T) {
		assert.NoError(t, ValidateVar("+15551234567", "phone_number"))
		assert.Error(t, ValidateVar("555-1234", "phone_number"))
		assert.Error(t, ValidateVar("+0123456789", "phone_number"), "country code cannot start with zero")
		assert.Error(t, ValidateVar("15551234567", "phone_number"), "plus sign is mandatory")
	})

	t.Run("consented", func(t *testing.T) {
		assert.NoError(t, ValidateVar(true, "consented"))
		assert.Error(t, ValidateVar(false, "consented"))
		assert.Error(t, ValidateVar("true", "consented"), "only a real bool passes")
	})

	t.Run("intake_date", func(t *testing.T) {
		assert.NoError(t, ValidateVar("1990-04-12", "intake_date"))
		assert.Error(t, ValidateVar("04/12/1990", "intake_date"), "display format is not the stored format")
		assert.Error(t, ValidateVar("1990-13-40", "intake_date"))
		assert.Error(t, ValidateVar("", "intake_date"))
	})
}

func TestSanitizeCreateUserRequest(t *testing.T) {
	request := validCreateUser()
	request.Name = "  Jane Doe  "
	request.Email = " Jane@Example.COM "

	SanitizeCreateUserRequest(request)

	assert.Equal(t, "Jane Doe", request.Name)
	assert.Equal(t, "jane@example.com", request.Email)
}
