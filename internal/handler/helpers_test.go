package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"corresponsal/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func contextoJSON(body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBindAceptaMontosCero(t *testing.T) {
	// Zero is a legal amount for these fields: an empty drawer count, a zero
	// opening base, a verified account balance of zero.
	t.Run("monto_contado cero", func(t *testing.T) {
		c, _ := contextoJSON(`{"monto_contado": 0}`)
		var req dto.CerrarTurnoRequest
		require.True(t, bindAndValidate(c, &req))
		require.NotNil(t, req.MontoContado)
		assert.True(t, req.MontoContado.IsZero())
	})
	t.Run("base_inicial cero", func(t *testing.T) {
		c, _ := contextoJSON(`{"base_inicial": 0}`)
		var req dto.AbrirTurnoRequest
		require.True(t, bindAndValidate(c, &req))
		require.NotNil(t, req.BaseInicial)
		assert.True(t, req.BaseInicial.IsZero())
	})
	t.Run("saldo_real cero", func(t *testing.T) {
		c, _ := contextoJSON(`{"cuenta_id": "a2b1f6e0-0000-4000-8000-000000000001", "saldo_real": 0}`)
		var req dto.AjusteRequest
		require.True(t, bindAndValidate(c, &req))
		require.NotNil(t, req.SaldoReal)
		assert.True(t, req.SaldoReal.IsZero())
	})
}

func TestBindDistingueCampoAusenteDeCero(t *testing.T) {
	c, _ := contextoJSON(`{}`)
	var req dto.CerrarTurnoRequest
	require.True(t, bindAndValidate(c, &req))
	assert.Nil(t, req.MontoContado, "campo ausente queda nil, no cero")
}

func TestBindRechazaMontosNegativos(t *testing.T) {
	t.Run("movimiento de caja", func(t *testing.T) {
		c, w := contextoJSON(`{"tipo_codigo": "deposito", "monto": -5000, "descripcion": "deposito cliente"}`)
		var req dto.RegistrarMovimientoRequest
		assert.False(t, bindAndValidate(c, &req))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
	t.Run("movimiento bancario", func(t *testing.T) {
		c, w := contextoJSON(`{"cuenta_id": "a2b1f6e0-0000-4000-8000-000000000001", "direccion": "entrada", "monto": -7000, "descripcion": "consignacion"}`)
		var req dto.RegistrarMovimientoBancoRequest
		assert.False(t, bindAndValidate(c, &req))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
	t.Run("base_inicial negativa", func(t *testing.T) {
		c, w := contextoJSON(`{"base_inicial": -100}`)
		var req dto.AbrirTurnoRequest
		assert.False(t, bindAndValidate(c, &req))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestBindRechazaMontoCeroEnRegistro(t *testing.T) {
	// Unlike counts and bases, a movement magnitude of zero is meaningless.
	c, w := contextoJSON(`{"tipo_codigo": "deposito", "monto": 0, "descripcion": "deposito cliente"}`)
	var req dto.RegistrarMovimientoRequest
	assert.False(t, bindAndValidate(c, &req))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
