package basehdl

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/api/base/models"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/utility"
)

// ParseFetchQuery reads search, page and limit; unparsable numbers fall
// back to the defaults. Other parameters are kept for entity filters.
func ParseFetchQuery(c fiber.Ctx) basemodels.FetchQuery {
	params := c.Queries()
	q := basemodels.FetchQuery{
		Search: strings.TrimSpace(params["search"]),
		Page:   parseInt64(params["page"], basemodels.DefaultPage),
		Limit:  parseInt64(params["limit"], basemodels.DefaultLimit),
		Params: make(map[string]string, len(params)),
	}
	for k, v := range params {
		switch k {
		case "search", "page", "limit":
		default:
			q.Params[k] = v
		}
	}
	return q.Normalize()
}

// QueryInt reads an integer query parameter, def when absent or invalid.
func QueryInt(c fiber.Ctx, key string, def int64) int64 {
	return parseInt64(c.Query(key), def)
}

func parseInt64(raw string, def int64) int64 {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return def
	}
	return v
}

// GetIDFromContext parses the :id route parameter.
func GetIDFromContext(c fiber.Ctx) (primitive.ObjectID, error) {
	id, ok := utility.String2ObjectID(c.Params("id"))
	if !ok {
		return primitive.NilObjectID, common.InvalidID("id")
	}
	return id, nil
}

// ParseRequestBody decodes the JSON body into v.
func ParseRequestBody(c fiber.Ctx, v interface{}) error {
	return utility.DecodeJSON(c.Body(), v)
}
