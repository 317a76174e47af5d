package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"corresponsal/internal/apierror"
	"corresponsal/internal/middleware"
	"corresponsal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// campoRequerido reports a missing body field with the same envelope the
// validator produces. Used for pointer amounts whose zero value is legal.
func campoRequerido(c *gin.Context, campo string) {
	c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{campo: "required"}))
}

// respondError maps service sentinels onto HTTP statuses. Store failures
// never leak their underlying detail to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrReferenciaInvalida):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrSinTurnoAbierto),
		errors.Is(err, service.ErrTurnoYaAbierto),
		errors.Is(err, service.ErrNoEditable):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrAlmacenNoDisponible):
		c.JSON(http.StatusServiceUnavailable, apierror.New(service.ErrAlmacenNoDisponible.Error()))
	default:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	}
}

// operadorID extracts the authenticated operator from the JWT claims.
func operadorID(c *gin.Context) (uuid.UUID, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token mal formado"))
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id invalido"))
		return uuid.Nil, false
	}
	return id, true
}

func pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
