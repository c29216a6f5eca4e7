package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizePassesThroughTestTokens(t *testing.T) {
	token, err := Tokenize(Details{Number: "tok_visa", ExpiryMonth: "12", ExpiryYear: "2030"})

	require.NoError(t, err)
	assert.Equal(t, "tok_visa", token.Token)
	assert.Equal(t, "12/2030", token.Expiry)
}

func TestTokenizeRejectsInvalidNumbers(t *testing.T) {
	tests := []struct {
		name   string
		number string
	}{
		{name: "empty", number: ""},
		{name: "fails luhn check", number: "4242424242424241"},
		{name: "non numeric", number: "4242-4242"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(Details{Number: tt.number, ExpiryMonth: "12", ExpiryYear: "2030"})
			assert.Error(t, err)
		})
	}
}

func TestIsValidCardNumber(t *testing.T) {
	assert.True(t, isValidCardNumber("4242424242424242"))
	assert.False(t, isValidCardNumber("4242424242424243"))
}
