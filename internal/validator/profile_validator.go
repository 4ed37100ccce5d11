package validator

import (
	"strings"

	"luxestore/internal/domain/model"
	"luxestore/internal/usecase"
)

type profileValidator struct{}

// Usecaseは interface を依存注入
func NewProfileValidator() usecase.ProfileValidator {
	return &profileValidator{}
}

// プロフィールの検証。姓名は必須、それ以外の配送先欄は任意。
func (v *profileValidator) ValidateProfile(in model.UserProfile) error {
	if strings.TrimSpace(in.FirstName) == "" {
		return ErrFirstNameRequired
	}
	if strings.TrimSpace(in.LastName) == "" {
		return ErrLastNameRequired
	}

	if email := strings.TrimSpace(in.Email); email != "" && !isEmailLike(email) {
		return ErrEmailInvalid
	}
	return nil
}
