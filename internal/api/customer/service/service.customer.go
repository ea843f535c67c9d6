// Package customersvc holds the customer repository.
package customersvc

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/models"
	basesvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/service"
	customermodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/customer/models"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
)

// CustomerFetchSpec searches by first name.
var CustomerFetchSpec = basemodels.FetchSpec{
	SearchFields: []string{"first_name"},
}

type CustomerService struct {
	*basesvc.BaseServiceMongoImpl[customermodels.Customer]
}

func NewCustomerService() (*CustomerService, error) {
	coll, err := basesvc.CollectionFromRegistry(global.MongoDB_ColNames.Customers)
	if err != nil {
		return nil, err
	}
	return &CustomerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[customermodels.Customer](coll, "customer", CustomerFetchSpec),
	}, nil
}

// Normalize trims names and lower-cases the email so the unique index
// treats addresses case-insensitively.
func Normalize(c customermodels.Customer) customermodels.Customer {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.PhoneNumber = strings.TrimSpace(c.PhoneNumber)
	return c
}

func (s *CustomerService) Create(ctx context.Context, data customermodels.Customer) (customermodels.Customer, error) {
	return s.BaseServiceMongoImpl.Create(ctx, Normalize(data))
}

func (s *CustomerService) Update(ctx context.Context, id primitive.ObjectID, patch []byte) (customermodels.Customer, error) {
	_, merged, err := s.Merge(ctx, id, patch)
	if err != nil {
		return customermodels.Customer{}, err
	}
	merged = Normalize(merged)
	if err := s.Validate(merged); err != nil {
		return customermodels.Customer{}, err
	}
	return s.Save(ctx, id, merged)
}
