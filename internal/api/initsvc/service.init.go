// Package initsvc seeds the reference data a fresh store needs: the default
// staff roles and product categories.
package initsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	catalogmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/catalog/models"
	catalogsvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/catalog/service"
	staffmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/staff/models"
	staffsvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/staff/service"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/logger"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/utility"
)

// Seeder is the part of a repository seeding needs.
type Seeder[T any] interface {
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
	Create(ctx context.Context, data T) (T, error)
}

var DefaultRoles = []staffmodels.Role{
	{RoleName: "Cashier", RoleDescription: "Operates the checkout", RoleSalary: 15000},
	{RoleName: "Stock Clerk", RoleDescription: "Receives deliveries and restocks shelves", RoleSalary: 14000},
	{RoleName: "Store Manager", RoleDescription: "Runs daily store operations", RoleSalary: 35000},
}

var DefaultCategories = []catalogmodels.Category{
	{CategoryName: "Beverages", CategoryDescription: "Soft drinks, juice, water, coffee and tea"},
	{CategoryName: "Bakery", CategoryDescription: "Bread and pastries"},
	{CategoryName: "Produce", CategoryDescription: "Fresh fruit and vegetables"},
	{CategoryName: "Dairy", CategoryDescription: "Milk, cheese, yoghurt and eggs"},
}

type InitService struct {
	roles      Seeder[staffmodels.Role]
	categories Seeder[catalogmodels.Category]
}

func NewInitService() (*InitService, error) {
	roles, err := staffsvc.NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("create role service: %w", err)
	}
	categories, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("create category service: %w", err)
	}
	return NewInitServiceWith(roles, categories), nil
}

func NewInitServiceWith(roles Seeder[staffmodels.Role], categories Seeder[catalogmodels.Category]) *InitService {
	return &InitService{roles: roles, categories: categories}
}

// seed creates every item whose name (compared case-insensitively on field)
// is not stored yet and returns how many were created.
func seed[T any](ctx context.Context, store Seeder[T], field string, items []T, name func(T) string) (int, error) {
	created := 0
	for _, item := range items {
		exists, err := store.DocumentExists(ctx, bson.M{field: utility.EqualsInsensitive(name(item))})
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}
		if _, err := store.Create(ctx, item); err != nil {
			return created, fmt.Errorf("seed %s %q: %w", field, name(item), err)
		}
		created++
	}
	return created, nil
}

func (s *InitService) InitRoles(ctx context.Context) (int, error) {
	n, err := seed(ctx, s.roles, "role_name", DefaultRoles, func(r staffmodels.Role) string { return r.RoleName })
	logger.WithContext(ctx).WithField("created", n).Info("default roles checked")
	return n, err
}

func (s *InitService) InitCategories(ctx context.Context) (int, error) {
	n, err := seed(ctx, s.categories, "category_name", DefaultCategories, func(c catalogmodels.Category) string { return c.CategoryName })
	logger.WithContext(ctx).WithField("created", n).Info("default categories checked")
	return n, err
}
