package staffsvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/models"
	basesvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/service"
	staffmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/staff/models"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
)

func TestEmployeeValidation(t *testing.T) {
	v := global.NewValidator()

	tests := []struct {
		name   string
		emp    staffmodels.Employee
		fields map[string]string
	}{
		{
			name: "valid",
			emp: staffmodels.Employee{
				FirstName: "Somchai", LastName: "Dee", PhoneNumber: "081",
				Gender: staffmodels.GenderMale, RoleID: primitive.NewObjectID(),
			},
		},
		{
			name: "bad gender and missing role",
			emp:  staffmodels.Employee{FirstName: "A", LastName: "B", PhoneNumber: "1", Gender: "robot"},
			fields: map[string]string{
				"gender":  "gender must be one of [male, female, other]",
				"role_id": "role_id is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.emp)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			got := common.ValidationErrorMap(err)
			for k, msg := range tt.fields {
				assert.Equal(t, msg, got[k])
			}
		})
	}
}

func TestRoleSalaryFloor(t *testing.T) {
	v := global.NewValidator()
	err := v.Struct(staffmodels.Role{RoleName: "Cashier", RoleSalary: 9999})
	require.Error(t, err)
	assert.Equal(t, "role_salary must be greater than or equal to 10000", common.ValidationErrorMap(err)["role_salary"])

	assert.NoError(t, v.Struct(staffmodels.Role{RoleName: "Cashier", RoleSalary: staffmodels.MinRoleSalary}))
}

func TestApplyDefaultsHireDate(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	e := ApplyDefaults(staffmodels.Employee{}, now)
	assert.Equal(t, now, e.HireDate)

	hired := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	e = ApplyDefaults(staffmodels.Employee{HireDate: hired}, now)
	assert.Equal(t, hired, e.HireDate)
}

func TestEmployeeSearchMatchesEitherName(t *testing.T) {
	filter, err := basesvc.BuildFilter(basemodels.FetchQuery{Search: "dee"}, EmployeeFetchSpec)
	require.NoError(t, err)
	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	assert.Len(t, or, 2)
	assert.Contains(t, or, bson.M{"last_name": bson.M{"$regex": "dee", "$options": "i"}})
}
