package common

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{
		Code:    11000,
		Message: `E11000 duplicate key error collection: supermarket.customers index: email_unique dup key: { email: "a@b.c" }`,
	}}}

	tests := []struct {
		name       string
		in         error
		wantStatus int
		wantIs     error
	}{
		{"nil", nil, 0, nil},
		{"no documents", mongo.ErrNoDocuments, http.StatusNotFound, ErrNotFound},
		{"wrapped no documents", fmt.Errorf("find bill: %w", mongo.ErrNoDocuments), http.StatusNotFound, ErrNotFound},
		{"duplicate key", dup, http.StatusBadRequest, ErrDuplicate},
		{"app error passes through", NotFound("bill"), http.StatusNotFound, ErrNotFound},
		{"anything else", errors.New("boom"), http.StatusInternalServerError, ErrDatabase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertMongoError(tt.in)
			if tt.in == nil {
				assert.NoError(t, got)
				return
			}
			assert.Equal(t, tt.wantStatus, StatusOf(got))
			assert.ErrorIs(t, got, tt.wantIs)
		})
	}
}

func TestDuplicateKeyFields(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{
		Code:    11000,
		Message: `E11000 duplicate key error collection: supermarket.products index: product_name_unique dup key: { product_name: "Milk" }`,
	}}}

	var appErr *Error
	require.ErrorAs(t, ConvertMongoError(dup), &appErr)
	assert.Equal(t, map[string]string{"product_name": "product_name already exists"}, appErr.Fields)

	// older servers only name the index
	assert.Equal(t, "category_name", DuplicateKeyField(errors.New("E11000 duplicate key error index: category_name_unique")))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("plain")))
	assert.Equal(t, http.StatusBadRequest, StatusOf(FieldError("email", "bad")))
	assert.True(t, IsClientError(ErrInvalidID))
	assert.False(t, IsClientError(ErrTransaction))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("socket closed")
	err := NewError(ErrCodeDatabaseQuery, MsgDatabaseError, http.StatusInternalServerError, cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "socket closed")
}

type address struct {
	City string `json:"city" validate:"required"`
}

type sample struct {
	FirstName    string  `json:"first_name" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	LoyaltyPoint int     `json:"loyalty_point" validate:"gte=0"`
	Gender       string  `json:"gender" validate:"oneof=male female other"`
	Address      address `json:"address"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func TestValidationErrorMap(t *testing.T) {
	err := newValidator().Struct(sample{Email: "nope", LoyaltyPoint: -1, Gender: "x"})
	require.Error(t, err)

	got := ValidationErrorMap(err)
	assert.Equal(t, "first_name is required", got["first_name"])
	assert.Equal(t, "email must be a valid email address", got["email"])
	assert.Equal(t, "loyalty_point must be greater than or equal to 0", got["loyalty_point"])
	assert.Equal(t, "gender must be one of [male, female, other]", got["gender"])
	assert.Equal(t, "city is required", got["address.city"])
}

func TestValidationErrorMapNonValidatorError(t *testing.T) {
	got := ValidationErrorMap(errors.New("unexpected EOF"))
	assert.Equal(t, map[string]string{"body": "unexpected EOF"}, got)
}

func TestToSnake(t *testing.T) {
	assert.Equal(t, "start_date", toSnake("StartDate"))
	assert.Equal(t, "price", toSnake("Price"))
}
