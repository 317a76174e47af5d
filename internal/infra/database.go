package infra

import (
	"fmt"
	"time"

	"corresponsal/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies idempotent SQL patches that GORM
// cannot express (partial indexes, seed rows).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations creates the schema and applies the post-AutoMigrate patches.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.TipoTransaccion{},
		&model.Cuenta{},
		&model.Movimiento{},
		&model.MovimientoBanco{},
		&model.Turno{},
		&model.ResultadoCierre{},
		&model.FacturaCompra{},
		&model.RegistroPyG{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	if err := applySchemaPatches(db); err != nil {
		return fmt.Errorf("schema patches: %w", err)
	}
	if err := seedCatalogos(db); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// Each statement uses IF NOT EXISTS semantics so re-running is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// At most one turno abierto per operator, enforced at the DB so two
		// concurrent Abrir calls cannot both win.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uni_turnos_operador_abierto') THEN
		    CREATE UNIQUE INDEX uni_turnos_operador_abierto
		        ON turnos (operador_id)
		        WHERE estado = 'abierto';
		  END IF;
		END $$`,
		// Partial index for the due-date alert cron query.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_facturas_alerta_pendiente') THEN
		    CREATE INDEX idx_facturas_alerta_pendiente
		        ON factura_compras (fecha_vencimiento)
		        WHERE estado = 'pendiente' AND alerta_enviada = false;
		  END IF;
		END $$`,
	}
	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}

// seedCatalogos inserts the transaction-type catalog and the well-known
// account ledgers. ON CONFLICT DO NOTHING keeps existing configuration
// untouched; operators may tune names after the first boot.
func seedCatalogos(db *gorm.DB) error {
	type tipoSeed struct {
		codigo, nombre, categoria string
		multCaja, multBanco       int
		afectaDeuda               bool
	}
	tipos := []tipoSeed{
		{model.TipoDeposito, "Depósito de cliente", "corresponsal", +1, -1, false},
		{model.TipoRetiro, "Retiro de cliente", "corresponsal", -1, +1, false},
		{model.TipoPagoRecibo, "Pago de recibo", "corresponsal", +1, -1, false},
		{model.TipoIngresoManual, "Ingreso manual", "caja", +1, 0, false},
		{model.TipoEgresoManual, "Egreso manual", "caja", -1, 0, false},
		{model.TipoPrestamo, "Préstamo a cliente", "cartera", -1, 0, true},
		{model.TipoAbonoCredito, "Abono a crédito", "cartera", +1, 0, true},
		{model.TipoAjusteSaldo, "Ajuste de saldo", "sistema", 0, 0, false},
	}
	for _, t := range tipos {
		err := db.Exec(`
			INSERT INTO tipo_transaccions (codigo, nombre, categoria, mult_caja, mult_banco, afecta_deuda, created_at)
			VALUES (?, ?, ?, ?, ?, ?, NOW())
			ON CONFLICT (codigo) DO NOTHING`,
			t.codigo, t.nombre, t.categoria, t.multCaja, t.multBanco, t.afectaDeuda,
		).Error
		if err != nil {
			return err
		}
	}

	type cuentaSeed struct {
		codigo, nombre, tipo string
	}
	cuentas := []cuentaSeed{
		{model.CuentaBancolombia, "Bancolombia", "banco"},
		{model.CuentaDavivienda, "Davivienda", "banco"},
		{model.CuentaCorresponsal, "Cuenta corresponsal", "banco"},
		{model.CuentaPorCobrar, "Cuentas por cobrar", "cartera"},
		{model.CuentaPorPagar, "Cuentas por pagar", "cartera"},
	}
	ref := time.Now()
	for _, c := range cuentas {
		err := db.Exec(`
			INSERT INTO cuentas (codigo, nombre, tipo_cuenta, saldo_inicial, fecha_referencia, activa, created_at, updated_at)
			VALUES (?, ?, ?, 0, ?, true, NOW(), NOW())
			ON CONFLICT (codigo) DO NOTHING`,
			c.codigo, c.nombre, c.tipo, ref,
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}
