package initsvc

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	catalogmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/catalog/models"
	staffmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/staff/models"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
)

type memSeeder[T any] struct {
	field   string
	name    func(T) string
	stored  []T
	failOn  string
	lookups int
}

func (m *memSeeder[T]) DocumentExists(_ context.Context, filter interface{}) (bool, error) {
	m.lookups++
	cond := filter.(bson.M)[m.field].(bson.M)
	pattern := strings.TrimSuffix(strings.TrimPrefix(cond["$regex"].(string), "^"), "$")
	for _, s := range m.stored {
		if strings.EqualFold(strings.ReplaceAll(pattern, `\`, ""), m.name(s)) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memSeeder[T]) Create(_ context.Context, data T) (T, error) {
	if m.name(data) == m.failOn {
		return data, errors.New("write failed")
	}
	m.stored = append(m.stored, data)
	return data, nil
}

func roleName(r staffmodels.Role) string         { return r.RoleName }
func categoryName(c catalogmodels.Category) string { return c.CategoryName }

func TestInitRolesSkipsExisting(t *testing.T) {
	roles := &memSeeder[staffmodels.Role]{field: "role_name", name: roleName,
		stored: []staffmodels.Role{{RoleName: "cashier"}}}
	svc := NewInitServiceWith(roles, &memSeeder[catalogmodels.Category]{field: "category_name", name: categoryName})

	n, err := svc.InitRoles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, roles.stored, 3)

	n, err = svc.InitRoles(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestInitCategoriesStopsOnError(t *testing.T) {
	cats := &memSeeder[catalogmodels.Category]{field: "category_name", name: categoryName, failOn: "Produce"}
	svc := NewInitServiceWith(&memSeeder[staffmodels.Role]{field: "role_name", name: roleName}, cats)

	n, err := svc.InitCategories(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Produce")
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, cats.lookups)
}

func TestDefaultsAreValid(t *testing.T) {
	global.InitValidator()
	for _, r := range DefaultRoles {
		assert.NoError(t, global.Validate.Struct(r), r.RoleName)
		assert.GreaterOrEqual(t, r.RoleSalary, float64(staffmodels.MinRoleSalary))
	}
	for _, c := range DefaultCategories {
		assert.NoError(t, global.Validate.Struct(c), c.CategoryName)
	}
}
