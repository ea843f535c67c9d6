// Package reportsvc runs the read-only aggregation reports.
package reportsvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/service"
	customermodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/customer/models"
	customersvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/customer/service"
	reportmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/report/models"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/database"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/global"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/logger"
)

type ReportService struct {
	bills      *mongo.Collection
	billItems  *mongo.Collection
	products   *mongo.Collection
	suppliers  *mongo.Collection
	promotions *mongo.Collection
	customers  *basesvc.BaseServiceMongoImpl[customermodels.Customer]
}

func NewReportService() (*ReportService, error) {
	names := global.MongoDB_ColNames
	colls := map[string]*mongo.Collection{}
	for _, name := range []string{names.Bills, names.BillItems, names.Products, names.Suppliers, names.Promotions, names.Customers} {
		coll, err := basesvc.CollectionFromRegistry(name)
		if err != nil {
			return nil, err
		}
		colls[name] = coll
	}

	return &ReportService{
		bills:      colls[names.Bills],
		billItems:  colls[names.BillItems],
		products:   colls[names.Products],
		suppliers:  colls[names.Suppliers],
		promotions: colls[names.Promotions],
		customers:  basesvc.NewBaseServiceMongo[customermodels.Customer](colls[names.Customers], "customer", customersvc.CustomerFetchSpec),
	}, nil
}

func aggregate[T any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	qctx, cancel := database.QueryContext(ctx)
	defer cancel()

	start := time.Now()
	cursor, err := coll.Aggregate(qctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(qctx)

	rows := []T{}
	if err := cursor.All(qctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"collection": coll.Name(),
		"rows":       len(rows),
		"took":       time.Since(start).String(),
	}).Debug("report")
	return rows, nil
}

func (s *ReportService) BestSelling(ctx context.Context, limit int64) ([]reportmodels.BestSellingRow, error) {
	return aggregate[reportmodels.BestSellingRow](ctx, s.billItems, BestSellingPipeline(limit))
}

func (s *ReportService) SupplierCatalog(ctx context.Context, name string) ([]reportmodels.SupplierCatalogRow, error) {
	return aggregate[reportmodels.SupplierCatalogRow](ctx, s.suppliers, SupplierCatalogPipeline(name))
}

// Revenue sums bills in [from, to]; an empty range yields zeros.
func (s *ReportService) Revenue(ctx context.Context, from, to time.Time) (reportmodels.RevenueSummary, error) {
	rows, err := aggregate[reportmodels.RevenueSummary](ctx, s.bills, RevenuePipeline(from, to))
	if err != nil {
		return reportmodels.RevenueSummary{}, err
	}
	summary := reportmodels.RevenueSummary{}
	if len(rows) > 0 {
		summary = rows[0]
	}
	summary.From, summary.To = from, to
	return summary, nil
}

func (s *ReportService) EmployeeRanking(ctx context.Context, limit int64) ([]reportmodels.EmployeeRankingRow, error) {
	return aggregate[reportmodels.EmployeeRankingRow](ctx, s.bills, EmployeeRankingPipeline(limit))
}

func (s *ReportService) LowStock(ctx context.Context, category string, threshold int64) ([]reportmodels.LowStockRow, error) {
	return aggregate[reportmodels.LowStockRow](ctx, s.products, LowStockPipeline(category, threshold))
}

// CustomerSpend looks the customer up by exact phone number; unknown
// numbers are a 404.
func (s *ReportService) CustomerSpend(ctx context.Context, phone string) (reportmodels.CustomerSpend, error) {
	customer, err := s.customers.FindOne(ctx, bson.M{"phone_number": phone}, nil)
	if err != nil {
		return reportmodels.CustomerSpend{}, err
	}

	rows, err := aggregate[reportmodels.CustomerSpend](ctx, s.bills, CustomerSpendPipeline(customer.ID))
	if err != nil {
		return reportmodels.CustomerSpend{}, err
	}
	spend := reportmodels.CustomerSpend{}
	if len(rows) > 0 {
		spend = rows[0]
	}
	spend.CustomerID = customer.ID
	spend.FirstName = customer.FirstName
	spend.LastName = customer.LastName
	spend.PhoneNumber = customer.PhoneNumber
	return spend, nil
}

func (s *ReportService) ActivePromotions(ctx context.Context, from, to time.Time) ([]reportmodels.ActivePromotionRow, error) {
	return aggregate[reportmodels.ActivePromotionRow](ctx, s.promotions, ActivePromotionsPipeline(from, to))
}
