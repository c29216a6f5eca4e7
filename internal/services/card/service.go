// Package card tokenizes top-up funding cards through Stripe. The card number
// never touches our storage; only the returned token does.
package card

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/token"

	"corepay/internal/config"
)

// Details carries the raw card fields supplied on a card-funded top-up.
type Details struct {
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
}

// Token is the provider reference for a tokenized card.
type Token struct {
	Token  string `json:"token"`
	Brand  string `json:"brand"`
	Expiry string `json:"expiry"`
}

// Tokenize validates the card number and exchanges it for a Stripe token.
// Stripe test tokens (tok_*) pass through untouched so local setups work
// without a live key.
func Tokenize(card Details) (*Token, error) {
	stripe.Key = config.GetEnv("STRIPE_SECRET_KEY", "")

	if strings.HasPrefix(card.Number, "tok_") {
		return &Token{
			Token:  card.Number,
			Brand:  "test",
			Expiry: fmt.Sprintf("%s/%s", card.ExpiryMonth, card.ExpiryYear),
		}, nil
	}

	if !isValidCardNumber(card.Number) {
		return nil, errors.New("invalid card number: failed validation check")
	}

	params := &stripe.TokenParams{
		Card: &stripe.CardParams{
			Number:   &card.Number,
			ExpMonth: &card.ExpiryMonth,
			ExpYear:  &card.ExpiryYear,
		},
	}
	stripeToken, err := token.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe tokenization failed: %w", err)
	}

	return &Token{
		Token:  stripeToken.ID,
		Brand:  string(stripeToken.Card.Brand),
		Expiry: fmt.Sprintf("%s/%s", card.ExpiryMonth, card.ExpiryYear),
	}, nil
}

// isValidCardNumber runs the Luhn check.
func isValidCardNumber(cardNumber string) bool {
	if cardNumber == "" {
		return false
	}

	var sum int
	shouldDouble := false
	for i := len(cardNumber) - 1; i >= 0; i-- {
		if cardNumber[i] < '0' || cardNumber[i] > '9' {
			return false
		}
		digit := int(cardNumber[i] - '0')
		if shouldDouble {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		shouldDouble = !shouldDouble
	}
	return sum%10 == 0
}
