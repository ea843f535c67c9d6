package basehdl

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/common"
	"github.com/JirakornChaitanaporn/DB-project-mongo-supermarket-sub000/internal/logger"
)

// JSONResponse writes data with an explicit utf-8 content type.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Status(statusCode).JSON(data)
}

// ErrorBody maps err to its status and response body:
// 400 field->message map, 404 {message}, 5xx {error} with a generic text.
func ErrorBody(err error) (int, interface{}) {
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, fiber.Map{"error": common.MsgInternalError}
	}

	status := appErr.StatusCode
	switch {
	case status >= 500 || status == 0:
		return http.StatusInternalServerError, fiber.Map{"error": common.MsgInternalError}
	case len(appErr.Fields) > 0:
		return status, appErr.Fields
	default:
		return status, fiber.Map{"message": appErr.Message}
	}
}

// HandleError writes the error response and logs server-side failures
// with their cause.
func HandleError(c fiber.Ctx, err error) error {
	status, body := ErrorBody(err)
	if status >= 500 {
		logger.ErrorWithRequest(c).WithError(err).Error("request failed")
	} else {
		logger.WithRequest(c).WithField("status", status).Debug(err.Error())
	}
	return JSONResponse(c, status, body)
}

// HandleResponse writes data with status on success, the error otherwise.
func HandleResponse(c fiber.Ctx, status int, data interface{}, err error) error {
	if err != nil {
		return HandleError(c, err)
	}
	return JSONResponse(c, status, data)
}

// SafeHandler runs fn, turning returned errors and panics into responses.
func SafeHandler(c fiber.Ctx, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorWithRequest(c).
				WithField("panic", fmt.Sprint(r)).
				WithField("stack", string(debug.Stack())).
				Error("handler panic")
			err = JSONResponse(c, http.StatusInternalServerError, fiber.Map{"error": common.MsgInternalError})
		}
	}()

	if err := fn(); err != nil {
		return HandleError(c, err)
	}
	return nil
}

// FiberErrorHandler renders errors that escape the handlers (unknown
// routes, limiter rejections, body parser failures) in the same shapes
// HandleError uses.
func FiberErrorHandler(c fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code >= http.StatusInternalServerError {
			logger.ErrorWithRequest(c).WithError(err).Error("request failed")
			return JSONResponse(c, fe.Code, fiber.Map{"error": common.MsgInternalError})
		}
		return JSONResponse(c, fe.Code, fiber.Map{"message": fe.Message})
	}
	return HandleError(c, err)
}
