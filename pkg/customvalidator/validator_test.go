package customvalidator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name         string `json:"name" validate:"notblank"`
	EmailAddress string `json:"emailAddress" validate:"notblank,email"`
	PhoneNumber  string `json:"phoneNumber" validate:"notblank,phone10"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))
	return v
}

func TestValidSample(t *testing.T) {
	v := newValidator(t)
	assert.NoError(t, v.Struct(sample{Name: "Central", EmailAddress: "a@b.com", PhoneNumber: "1234567890"}))
}

func TestDescribeListsEveryField(t *testing.T) {
	v := newValidator(t)
	err := v.Struct(sample{Name: "   ", EmailAddress: "not-an-email", PhoneNumber: "12345"})
	require.Error(t, err)

	assert.Equal(t, []string{
		"name: Name is required",
		"emailAddress: Email address must be valid",
		"phoneNumber: Phone number must be 10 digits",
	}, Describe(err, ""))
}

func TestDescribeEmptyFieldsAreRequired(t *testing.T) {
	v := newValidator(t)
	err := v.Struct(sample{})
	require.Error(t, err)

	assert.Equal(t, []string{
		"name: Name is required",
		"emailAddress: Email address is required",
		"phoneNumber: Phone number is required",
	}, Describe(err, ""))
}

func TestPhoneRule(t *testing.T) {
	v := newValidator(t)
	cases := map[string]bool{
		"1234567890":  true,
		"123456789":   false,
		"12345678901": false,
		"12345a7890":  false,
		"+123456789":  false,
	}
	for phone, ok := range cases {
		err := v.Var(phone, "phone10")
		assert.Equal(t, ok, err == nil, phone)
	}
}

func TestDescribePrefixAndPlainErrors(t *testing.T) {
	v := newValidator(t)
	err := v.Struct(sample{Name: "x", EmailAddress: "a@b.com", PhoneNumber: "1"})
	assert.Equal(t, []string{"holidays[2].phoneNumber: Phone number must be 10 digits"}, Describe(err, "holidays[2]."))

	assert.Equal(t, []string{"body: boom"}, Describe(errors.New("boom"), "body: "))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Email address", humanize("emailAddress"))
	assert.Equal(t, "Date", humanize("date"))
}
