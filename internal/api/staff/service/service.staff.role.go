// Package staffsvc holds the employee and role repositories.
package staffsvc

import (
	basemodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/models"
	basesvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/service"
	staffmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/staff/models"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
)

var RoleFetchSpec = basemodels.FetchSpec{
	SearchFields: []string{"role_name"},
}

type RoleService struct {
	*basesvc.BaseServiceMongoImpl[staffmodels.Role]
}

func NewRoleService() (*RoleService, error) {
	coll, err := basesvc.CollectionFromRegistry(global.MongoDB_ColNames.Roles)
	if err != nil {
		return nil, err
	}
	return &RoleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[staffmodels.Role](coll, "role", RoleFetchSpec),
	}, nil
}
