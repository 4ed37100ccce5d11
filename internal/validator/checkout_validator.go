package validator

import (
	"errors"
	"regexp"
	"strings"

	"luxestore/internal/domain/model"
	"luxestore/internal/usecase"
)

var (
	ErrFirstNameRequired = errors.New("first name is required")
	ErrLastNameRequired  = errors.New("last name is required")
	ErrEmailRequired     = errors.New("email is required")
	ErrEmailInvalid      = errors.New("email is invalid")
	ErrAddressRequired   = errors.New("address is required")
	ErrCityRequired      = errors.New("city is required")
	ErrZipCodeRequired   = errors.New("zip code is required")
)

type checkoutValidator struct{}

// Usecaseは interface を依存注入
func NewCheckoutValidator() usecase.CheckoutValidator {
	return &checkoutValidator{}
}

// 配送先フォームの検証（全項目必須＋メール形式）
func (v *checkoutValidator) ValidateShipping(in model.ShippingInfo) error {
	if strings.TrimSpace(in.FirstName) == "" {
		return ErrFirstNameRequired
	}
	if strings.TrimSpace(in.LastName) == "" {
		return ErrLastNameRequired
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		return ErrEmailRequired
	}
	if !isEmailLike(email) {
		return ErrEmailInvalid
	}

	if strings.TrimSpace(in.Address) == "" {
		return ErrAddressRequired
	}
	if strings.TrimSpace(in.City) == "" {
		return ErrCityRequired
	}
	if strings.TrimSpace(in.ZipCode) == "" {
		return ErrZipCodeRequired
	}
	return nil
}

// 簡易メール形式
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func isEmailLike(s string) bool {
	return emailRe.MatchString(s)
}
