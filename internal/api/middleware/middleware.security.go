package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"
)

var securityHeaders = [][2]string{
	{fiber.HeaderXContentTypeOptions, "nosniff"},
	{fiber.HeaderXFrameOptions, "DENY"},
	{fiber.HeaderXXSSProtection, "1; mode=block"},
	{fiber.HeaderReferrerPolicy, "strict-origin-when-cross-origin"},
}

// SecurityHeaders sets the static hardening headers on every response.
func SecurityHeaders() fiber.Handler {
	return func(c fiber.Ctx) error {
		applySecurityHeaders(&c.RequestCtx().Response.Header)
		return c.Next()
	}
}

func applySecurityHeaders(h *fasthttp.ResponseHeader) {
	for _, kv := range securityHeaders {
		h.Set(kv[0], kv[1])
	}
}
