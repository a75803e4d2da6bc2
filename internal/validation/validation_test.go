package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerShape struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=9"`
}

func TestStructValid(t *testing.T) {
	fields := Struct(registerShape{Name: "A", Email: "a@x.com", Password: "longenough1"})
	assert.Nil(t, fields)
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	fields := Struct(registerShape{Name: "", Email: "not-an-email", Password: "short"})
	require.Len(t, fields, 3)

	byField := map[string]FieldError{}
	for _, fe := range fields {
		byField[fe.Field] = fe
	}

	assert.Equal(t, "required", byField["name"].Rule)
	assert.Equal(t, "email", byField["email"].Rule)
	assert.Equal(t, "min", byField["password"].Rule)
	assert.Equal(t, "9", byField["password"].Param)
}
