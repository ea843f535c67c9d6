package global

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
)

type note struct {
	Description string `json:"category_description" validate:"no_xss"`
}

func TestNoXSS(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(note{Description: "Fresh bread baked daily"}))

	err := v.Struct(note{Description: `<SCRIPT>alert(1)</script>`})
	assert.Error(t, err)
	assert.Equal(t, "category_description contains forbidden markup", common.ValidationErrorMap(err)["category_description"])
}

func TestDefaultColNames(t *testing.T) {
	names := DefaultColNames()
	assert.Equal(t, "bill_items", names.BillItems)
	assert.Equal(t, "customers", names.Customers)
}
