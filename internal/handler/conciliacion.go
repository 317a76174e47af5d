package handler

import (
	"net/http"
	"time"

	"corresponsal/internal/apierror"
	"corresponsal/internal/dto"
	"corresponsal/internal/infra"
	"corresponsal/internal/service"

	"github.com/gin-gonic/gin"
)

type ConciliacionHandler struct {
	svc        service.ConciliacionService
	pdfStorage string
}

func NewConciliacionHandler(svc service.ConciliacionService, pdfStorage string) *ConciliacionHandler {
	return &ConciliacionHandler{svc: svc, pdfStorage: pdfStorage}
}

// Previsualizar godoc
// @Summary Previsualizar el cuadre del día sin guardarlo
// @Tags conciliacion
// @Accept json
// @Produce json
// @Param body body dto.ConciliacionRequest true "Conteo físico"
// @Success 200 {object} dto.ConciliacionResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/conciliacion/previsualizar [post]
func (h *ConciliacionHandler) Previsualizar(c *gin.Context) {
	op, ok := operadorID(c)
	if !ok {
		return
	}
	var req dto.ConciliacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Previsualizar(c.Request.Context(), op, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ConciliacionHandler) Guardar(c *gin.Context) {
	op, ok := operadorID(c)
	if !ok {
		return
	}
	var req dto.GuardarConciliacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Guardar(c.Request.Context(), op, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ConciliacionHandler) Obtener(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ConciliacionHandler) Listar(c *gin.Context) {
	hasta := time.Now()
	desde := hasta.AddDate(0, -1, 0)
	if v := c.Query("desde"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("desde invalido (AAAA-MM-DD)"))
			return
		}
		desde = t
	}
	if v := c.Query("hasta"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("hasta invalido (AAAA-MM-DD)"))
			return
		}
		hasta = t
	}
	resp, err := h.svc.Listar(c.Request.Context(), desde, hasta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PDF renders the saved result as a downloadable report.
func (h *ConciliacionHandler) PDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := h.svc.ObtenerModelo(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	path, err := infra.GenerateResultadoPDF(res, h.pdfStorage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo generar el PDF"))
		return
	}
	c.FileAttachment(path, "cierre_"+res.Fecha.Format("2006-01-02")+".pdf")
}
