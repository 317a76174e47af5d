package handler

import (
	"net/http"
	"strconv"

	"corresponsal/internal/dto"
	"corresponsal/internal/service"

	"github.com/gin-gonic/gin"
)

type FacturasHandler struct{ svc service.FacturaService }

func NewFacturasHandler(svc service.FacturaService) *FacturasHandler {
	return &FacturasHandler{svc: svc}
}

func (h *FacturasHandler) Registrar(c *gin.Context) {
	op, ok := operadorID(c)
	if !ok {
		return
	}
	var req dto.RegistrarFacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), op, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *FacturasHandler) Listar(c *gin.Context) {
	page, limit := pagination(c)
	estado := c.Query("estado")
	items, total, err := h.svc.Listar(c.Request.Context(), estado, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FacturaListResponse{Items: items, Total: total, Page: page, Limit: limit})
}

func (h *FacturasHandler) PorVencer(c *gin.Context) {
	dias, _ := strconv.Atoi(c.DefaultQuery("dias", "3"))
	if dias < 1 || dias > 90 {
		dias = 3
	}
	resp, err := h.svc.PorVencer(c.Request.Context(), dias)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FacturasHandler) MarcarPagada(c *gin.Context) {
	op, ok := operadorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.PagarFacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.MarcarPagada(c.Request.Context(), id, op, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
