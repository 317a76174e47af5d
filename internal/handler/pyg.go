package handler

import (
	"net/http"
	"strconv"
	"time"

	"corresponsal/internal/apierror"
	"corresponsal/internal/dto"
	"corresponsal/internal/service"

	"github.com/gin-gonic/gin"
)

type PyGHandler struct{ svc service.PyGService }

func NewPyGHandler(svc service.PyGService) *PyGHandler { return &PyGHandler{svc: svc} }

func (h *PyGHandler) Registrar(c *gin.Context) {
	op, ok := operadorID(c)
	if !ok {
		return
	}
	var req dto.RegistrarPyGRequest
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

func (h *PyGHandler) Listar(c *gin.Context) {
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

func (h *PyGHandler) ResumenMensual(c *gin.Context) {
	ahora := time.Now()
	anio, _ := strconv.Atoi(c.DefaultQuery("anio", strconv.Itoa(ahora.Year())))
	mes, _ := strconv.Atoi(c.DefaultQuery("mes", strconv.Itoa(int(ahora.Month()))))
	if mes < 1 || mes > 12 {
		c.JSON(http.StatusBadRequest, apierror.New("mes invalido (1-12)"))
		return
	}
	resp, err := h.svc.ResumenMensual(c.Request.Context(), anio, time.Month(mes))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
