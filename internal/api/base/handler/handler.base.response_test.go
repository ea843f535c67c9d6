package basehdl

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
)

func TestErrorBody(t *testing.T) {
	status, body := ErrorBody(common.NotFound("product"))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, fiber.Map{"message": "product not found"}, body)

	status, body = ErrorBody(common.FieldError("price", "price must be greater than or equal to 0"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, map[string]string{"price": "price must be greater than or equal to 0"}, body)

	status, body = ErrorBody(common.ConvertMongoError(errors.New("socket closed")))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, fiber.Map{"error": common.MsgInternalError}, body)

	status, _ = ErrorBody(errors.New("plain"))
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestFiberErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: FiberErrorHandler})
	app.Get("/teapot", func(c fiber.Ctx) error { return fiber.NewError(fiber.StatusTooManyRequests, "slow down") })
	app.Get("/broken", func(c fiber.Ctx) error { return fiber.ErrBadGateway })

	cases := []struct {
		path   string
		status int
		key    string
		want   string
	}{
		{"/missing", http.StatusNotFound, "message", ""},
		{"/teapot", http.StatusTooManyRequests, "message", "slow down"},
		{"/broken", http.StatusBadGateway, "error", common.MsgInternalError},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.path, nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)

			body := map[string]string{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Contains(t, body, tc.key)
			if tc.want != "" {
				assert.Equal(t, tc.want, body[tc.key])
			}
		})
	}
}
