package auth

import (
	"strings"
	"testing"

	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignup() SignupRequest {
	return SignupRequest{
		EmployeeID: "EMP-001",
		Username:   "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "+15551234567",
		Password:   "Secret123",
		Role:       "employee",
	}
}

func TestSignupRequest_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *SignupRequest)
		field  string
	}{
		{"valid", func(r *SignupRequest) {}, ""},
		{"hr allowed", func(r *SignupRequest) { r.Role = "hr" }, ""},
		{"admin rejected", func(r *SignupRequest) { r.Role = "admin" }, "role"},
		{"no digit", func(r *SignupRequest) { r.Password = "SecretPass" }, "password"},
		{"short password", func(r *SignupRequest) { r.Password = "Se1" }, "password"},
		{"password at bcrypt limit", func(r *SignupRequest) { r.Password = "Passw0rd" + strings.Repeat("x", 64) }, ""},
		{"password over bcrypt limit", func(r *SignupRequest) { r.Password = "Passw0rd" + strings.Repeat("x", 65) }, "password"},
		{"missing employee id", func(r *SignupRequest) { r.EmployeeID = " " }, "employee_id"},
		{"bad email", func(r *SignupRequest) { r.Email = "jane@" }, "email"},
		{"bad phone", func(r *SignupRequest) { r.Phone = "call me" }, "phone"},
		{"missing username", func(r *SignupRequest) { r.Username = "" }, "username"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			tt.mutate(&req)
			err := req.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.field)
		})
	}
}

func TestSignupRequest_ProfileName(t *testing.T) {
	cases := []struct {
		username    string
		first, last string
	}{
		{"Jane Doe", "Jane", "Doe"},
		{"  Mary   Ann  Smith ", "Mary", "Ann Smith"},
		{"solo", "solo", ""},
		{"", "New", "User"},
	}
	for _, c := range cases {
		r := SignupRequest{Username: c.username}
		first, last := r.ProfileName()
		assert.Equal(t, c.first, first, c.username)
		assert.Equal(t, c.last, last, c.username)
	}
}

func TestSigninRequest_Validate(t *testing.T) {
	assert.NoError(t, (&SigninRequest{Email: "a@b.cd", Password: "x"}).Validate())

	err := (&SigninRequest{Email: "nope"}).Validate()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}
