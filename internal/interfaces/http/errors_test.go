package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
)

func TestRespondError_MapeaSentinelasAStatusYCodigo(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"entrada inválida", domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{"documento vacío", domain.ErrEmptyDocument, fiber.StatusBadRequest, "EMPTY_DOCUMENT"},
		{"ajuste inválido", domain.ErrInvalidAdjustment, fiber.StatusBadRequest, "INVALID_ADJUSTMENT"},
		{"traslado inválido", domain.ErrInvalidTransfer, fiber.StatusBadRequest, "INVALID_TRANSFER"},
		{"recurso no encontrado", domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"usuario no encontrado", domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"stock insuficiente", domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
		{"documento no validable", domain.ErrDocumentNotValidatable, fiber.StatusConflict, "NOT_VALIDATABLE"},
		{"transición no permitida", domain.ErrInvalidStatusTransition, fiber.StatusConflict, "INVALID_TRANSITION"},
		{"conflicto de concurrencia", domain.ErrConcurrentModification, fiber.StatusConflict, "CONCURRENT_MODIFICATION"},
		{"duplicado", domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
		{"email ya registrado", domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
		{"no autorizado", domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{"acceso denegado", domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
		{"error no mapeado", errors.New("se cayó la base"), fiber.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/x", func(c *fiber.Ctx) error {
				return respondError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/x", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode, "status para %v", tc.err)

			var body dto.ErrorResponse
			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tc.wantCode, body.Code, "código para %v", tc.err)
			assert.NotEmpty(t, body.Message, "el cuerpo siempre lleva mensaje")
		})
	}
}

// Los repositorios envuelven los sentinelas con fmt.Errorf("...: %w"); el
// mapeo debe seguir funcionando sobre errores envueltos.
func TestRespondError_ReconoceErroresEnvueltos(t *testing.T) {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return respondError(c, fmt.Errorf("validar entrega: %w", domain.ErrInsufficientStock))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var body dto.ErrorResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
}
