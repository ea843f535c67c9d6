// Package saleshdl serves /bill and /billitem.
package saleshdl

import (
	"fmt"

	basehdl "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/handler"
	salesmodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/sales/models"
	salessvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/sales/service"
)

type BillHandler struct {
	basehdl.BaseHandler[salesmodels.Bill]
}

func NewBillHandler() (*BillHandler, error) {
	service, err := salessvc.NewBillService()
	if err != nil {
		return nil, fmt.Errorf("create bill service: %w", err)
	}
	return &BillHandler{BaseHandler: *basehdl.NewBaseHandler[salesmodels.Bill](service)}, nil
}

// BillItemHandler writes go through the order service, so creating an
// item also updates its bill.
type BillItemHandler struct {
	basehdl.BaseHandler[salesmodels.BillItem]
}

func NewBillItemHandler() (*BillItemHandler, error) {
	service, err := salessvc.NewBillItemService()
	if err != nil {
		return nil, fmt.Errorf("create bill item service: %w", err)
	}
	return &BillItemHandler{BaseHandler: *basehdl.NewBaseHandler[salesmodels.BillItem](service)}, nil
}
