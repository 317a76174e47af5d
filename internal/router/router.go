package router

import (
	"time"

	"corresponsal/internal/config"
	"corresponsal/internal/handler"
	"corresponsal/internal/middleware"
	"corresponsal/internal/repository"
	"corresponsal/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	tipoRepo := repository.NewTipoRepository(db)
	turnoRepo := repository.NewTurnoRepository(db)
	movimientoRepo := repository.NewMovimientoRepository(db)
	bancoRepo := repository.NewBancoRepository(db)
	resultadoRepo := repository.NewResultadoRepository(db)
	facturaRepo := repository.NewFacturaRepository(db)
	pygRepo := repository.NewPyGRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	saldoSvc := service.NewSaldoService(movimientoRepo, bancoRepo)
	turnoSvc := service.NewTurnoService(turnoRepo, saldoSvc)
	movimientoSvc := service.NewMovimientoService(movimientoRepo, tipoRepo, turnoRepo)
	bancoSvc := service.NewBancoService(bancoRepo, saldoSvc)
	ajusteSvc := service.NewAjusteService(bancoRepo, saldoSvc)
	conciliacionSvc := service.NewConciliacionService(resultadoRepo, turnoRepo, saldoSvc)
	facturaSvc := service.NewFacturaService(facturaRepo, bancoRepo)
	pygSvc := service.NewPyGService(pygRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	turnosH := handler.NewTurnosHandler(turnoSvc)
	movimientosH := handler.NewMovimientosHandler(movimientoSvc)
	bancosH := handler.NewBancosHandler(bancoSvc, ajusteSvc)
	conciliacionH := handler.NewConciliacionHandler(conciliacionSvc, cfg.PDFStoragePath)
	facturasH := handler.NewFacturasHandler(facturaSvc)
	pygH := handler.NewPyGHandler(pygSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	operativo := middleware.RequireRole("cajero", "conciliador", "administrador")
	cierre := middleware.RequireRole("conciliador", "administrador")

	v1 := r.Group("/v1", jwtMW)
	{
		turnos := v1.Group("/turnos")
		{
			turnos.POST("/abrir", operativo, turnosH.Abrir)
			turnos.POST("/cerrar", operativo, turnosH.Cerrar)
			turnos.POST("/reabrir", operativo, turnosH.Reabrir)
			turnos.GET("/actual", operativo, turnosH.Actual)
			turnos.GET("/historial", cierre, turnosH.Historial)
		}

		v1.GET("/tipos-transaccion", operativo, movimientosH.ListarTipos)
		movs := v1.Group("/movimientos")
		{
			movs.POST("", operativo, movimientosH.Registrar)
			movs.GET("", operativo, movimientosH.Listar)
			movs.PUT("/:id", operativo, movimientosH.Actualizar)
			movs.DELETE("/:id", operativo, movimientosH.Eliminar)
		}

		cuentas := v1.Group("/cuentas")
		{
			cuentas.GET("", operativo, bancosH.ListarCuentas)
			cuentas.GET("/:id/saldo", operativo, bancosH.Saldo)
			cuentas.GET("/:id/movimientos", operativo, bancosH.ListarMovimientos)
			cuentas.POST("/movimientos", operativo, bancosH.RegistrarMovimiento)
			cuentas.PUT("/movimientos/:id", operativo, bancosH.ActualizarMovimiento)
			cuentas.DELETE("/movimientos/:id", operativo, bancosH.EliminarMovimiento)
			cuentas.POST("/ajuste", cierre, bancosH.GenerarAjuste)
		}

		conc := v1.Group("/conciliacion", cierre)
		{
			conc.POST("/previsualizar", conciliacionH.Previsualizar)
			conc.POST("/resultados", conciliacionH.Guardar)
			conc.GET("/resultados", conciliacionH.Listar)
			conc.GET("/resultados/:id", conciliacionH.Obtener)
			conc.GET("/resultados/:id/pdf", conciliacionH.PDF)
		}

		facturas := v1.Group("/facturas", cierre)
		{
			facturas.POST("", facturasH.Registrar)
			facturas.GET("", facturasH.Listar)
			facturas.GET("/por-vencer", facturasH.PorVencer)
			facturas.POST("/:id/pagar", facturasH.MarcarPagada)
		}

		pyg := v1.Group("/pyg", cierre)
		{
			pyg.POST("", pygH.Registrar)
			pyg.GET("", pygH.Listar)
			pyg.GET("/resumen", pygH.ResumenMensual)
		}

		usuarios := v1.Group("/usuarios", middleware.RequireRole("administrador"))
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
			usuarios.PATCH("/:id/reactivar", usuariosH.Reactivar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
