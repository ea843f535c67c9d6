package staffsvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/models"
	basesvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/service"
	staffmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/staff/models"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
)

// EmployeeFetchSpec matches either name and expands role_id.
var EmployeeFetchSpec = basemodels.FetchSpec{
	SearchFields: []string{"first_name", "last_name"},
	Lookups: []basemodels.Lookup{
		{Field: "role_id", From: global.MongoDB_ColNames.Roles},
	},
	IDFilters: map[string]string{"role_id": "role_id"},
}

type EmployeeService struct {
	*basesvc.BaseServiceMongoImpl[staffmodels.Employee]
	now func() time.Time
}

func NewEmployeeService() (*EmployeeService, error) {
	coll, err := basesvc.CollectionFromRegistry(global.MongoDB_ColNames.Employees)
	if err != nil {
		return nil, err
	}
	return &EmployeeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[staffmodels.Employee](coll, "employee", EmployeeFetchSpec),
		now:                  time.Now,
	}, nil
}

// ApplyDefaults fills hire_date with now when it was not supplied.
func ApplyDefaults(e staffmodels.Employee, now time.Time) staffmodels.Employee {
	if e.HireDate.IsZero() {
		e.HireDate = now.UTC()
	}
	return e
}

func (s *EmployeeService) roleRef(e staffmodels.Employee) basesvc.Ref {
	return basesvc.Ref{Field: "role_id", Collection: global.MongoDB_ColNames.Roles, ID: e.RoleID}
}

func (s *EmployeeService) Create(ctx context.Context, data staffmodels.Employee) (staffmodels.Employee, error) {
	data = ApplyDefaults(data, s.now())
	if err := s.Validate(data); err != nil {
		return staffmodels.Employee{}, err
	}
	if err := basesvc.CheckRefs(ctx, s.roleRef(data)); err != nil {
		return staffmodels.Employee{}, err
	}
	return s.InsertOne(ctx, data)
}

func (s *EmployeeService) Update(ctx context.Context, id primitive.ObjectID, patch []byte) (staffmodels.Employee, error) {
	existing, merged, err := s.Merge(ctx, id, patch)
	if err != nil {
		return staffmodels.Employee{}, err
	}
	if err := s.Validate(merged); err != nil {
		return staffmodels.Employee{}, err
	}
	if merged.RoleID != existing.RoleID {
		if err := basesvc.CheckRefs(ctx, s.roleRef(merged)); err != nil {
			return staffmodels.Employee{}, err
		}
	}
	return s.Save(ctx, id, merged)
}
