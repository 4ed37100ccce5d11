package validator_test

import (
	"testing"

	"luxestore/internal/domain/model"
	"luxestore/internal/validator"

	"github.com/stretchr/testify/assert"
)

func profile() model.UserProfile {
	return model.UserProfile{
		UserID:    "user-1",
		Email:     "taro@example.com",
		FirstName: "Taro",
		LastName:  "Yamada",
	}
}

func TestProfileValidator_Valid(t *testing.T) {
	v := validator.NewProfileValidator()
	assert.NoError(t, v.ValidateProfile(profile()))
}

// 配送先欄は任意
func TestProfileValidator_OptionalFieldsMayBeEmpty(t *testing.T) {
	v := validator.NewProfileValidator()

	in := profile()
	in.Address = ""
	in.City = ""
	in.ZipCode = ""
	in.Phone = ""
	assert.NoError(t, v.ValidateProfile(in))
}

func TestProfileValidator_NamesRequired(t *testing.T) {
	v := validator.NewProfileValidator()

	in := profile()
	in.FirstName = "  "
	assert.ErrorIs(t, v.ValidateProfile(in), validator.ErrFirstNameRequired)

	in = profile()
	in.LastName = ""
	assert.ErrorIs(t, v.ValidateProfile(in), validator.ErrLastNameRequired)
}

func TestProfileValidator_EmailFormat(t *testing.T) {
	v := validator.NewProfileValidator()

	in := profile()
	in.Email = "not-an-email"
	assert.ErrorIs(t, v.ValidateProfile(in), validator.ErrEmailInvalid)

	// email未設定は許す（トークンにemailが無いプロバイダもある）
	in = profile()
	in.Email = ""
	assert.NoError(t, v.ValidateProfile(in))
}
