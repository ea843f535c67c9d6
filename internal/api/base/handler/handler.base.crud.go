// Package basehdl provides the generic CRUD handler and response helpers.
package basehdl

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	basemodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/models"
	basesvc "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/service"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
)

// BaseHandler serves the five CRUD routes of one entity.
type BaseHandler[T any] struct {
	BaseService basesvc.BaseServiceMongo[T]
}

func NewBaseHandler[T any](service basesvc.BaseServiceMongo[T]) *BaseHandler[T] {
	return &BaseHandler[T]{BaseService: service}
}

// Fetch handles GET /fetch?search=&page=&limit=
func (h *BaseHandler[T]) Fetch(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		result, err := h.BaseService.Fetch(c.Context(), ParseFetchQuery(c))
		return HandleResponse(c, http.StatusOK, result, err)
	})
}

// FetchById handles GET /fetchById/:id
func (h *BaseHandler[T]) FetchById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := GetIDFromContext(c)
		if err != nil {
			return err
		}
		doc, err := h.BaseService.FindOneById(c.Context(), id)
		return HandleResponse(c, http.StatusOK, doc, err)
	})
}

// Create handles POST /create
func (h *BaseHandler[T]) Create(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var input T
		if err := ParseRequestBody(c, &input); err != nil {
			return err
		}
		doc, err := h.BaseService.Create(c.Context(), input)
		return HandleResponse(c, http.StatusCreated, doc, err)
	})
}

// Update handles PUT /update/:id with a partial body.
func (h *BaseHandler[T]) Update(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := GetIDFromContext(c)
		if err != nil {
			return err
		}
		doc, err := h.BaseService.Update(c.Context(), id, c.Body())
		return HandleResponse(c, http.StatusOK, doc, err)
	})
}

// Delete handles DELETE /delete/:id
func (h *BaseHandler[T]) Delete(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := GetIDFromContext(c)
		if err != nil {
			return err
		}
		if err := h.BaseService.Delete(c.Context(), id); err != nil {
			return err
		}
		return JSONResponse(c, http.StatusOK, basemodels.DeleteResult{Message: common.MsgDeleted, ID: id.Hex()})
	})
}
