package repository

import (
	"context"
	"errors"
	"time"

	"corresponsal/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BancoRepository interface {
	FindCuentaByID(ctx context.Context, id uuid.UUID) (*model.Cuenta, error)
	FindCuentaByCodigo(ctx context.Context, codigo string) (*model.Cuenta, error)
	ListCuentas(ctx context.Context) ([]model.Cuenta, error)

	CreateMovimiento(ctx context.Context, tx *gorm.DB, m *model.MovimientoBanco) error
	FindMovimientoByID(ctx context.Context, id uuid.UUID) (*model.MovimientoBanco, error)
	UpdateMovimiento(ctx context.Context, m *model.MovimientoBanco) error
	DeleteMovimiento(ctx context.Context, id uuid.UUID) error
	ListMovimientos(ctx context.Context, cuentaID uuid.UUID, desde, hasta *time.Time) ([]model.MovimientoBanco, error)
	// SumNeto returns SUM(entrada - salida) for movements of the account with
	// fecha >= desde.
	SumNeto(ctx context.Context, cuentaID uuid.UUID, desde time.Time) (decimal.Decimal, error)
	DB() *gorm.DB
}

type bancoRepo struct{ db *gorm.DB }

func NewBancoRepository(db *gorm.DB) BancoRepository { return &bancoRepo{db: db} }

func (r *bancoRepo) DB() *gorm.DB { return r.db }

func (r *bancoRepo) FindCuentaByID(ctx context.Context, id uuid.UUID) (*model.Cuenta, error) {
	var c model.Cuenta
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *bancoRepo) FindCuentaByCodigo(ctx context.Context, codigo string) (*model.Cuenta, error) {
	var c model.Cuenta
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *bancoRepo) ListCuentas(ctx context.Context) ([]model.Cuenta, error) {
	var cuentas []model.Cuenta
	err := r.db.WithContext(ctx).Where("activa = true").Order("codigo ASC").Find(&cuentas).Error
	return cuentas, err
}

func (r *bancoRepo) CreateMovimiento(ctx context.Context, tx *gorm.DB, m *model.MovimientoBanco) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(m).Error
}

func (r *bancoRepo) FindMovimientoByID(ctx context.Context, id uuid.UUID) (*model.MovimientoBanco, error) {
	var m model.MovimientoBanco
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *bancoRepo) UpdateMovimiento(ctx context.Context, m *model.MovimientoBanco) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *bancoRepo) DeleteMovimiento(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MovimientoBanco{}, id).Error
}

func (r *bancoRepo) ListMovimientos(ctx context.Context, cuentaID uuid.UUID, desde, hasta *time.Time) ([]model.MovimientoBanco, error) {
	q := r.db.WithContext(ctx).Where("cuenta_id = ?", cuentaID)
	if desde != nil {
		q = q.Where("fecha >= ?", *desde)
	}
	if hasta != nil {
		q = q.Where("fecha < ?", *hasta)
	}
	var movs []model.MovimientoBanco
	err := q.Order("fecha DESC").Find(&movs).Error
	return movs, err
}

func (r *bancoRepo) SumNeto(ctx context.Context, cuentaID uuid.UUID, desde time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&model.MovimientoBanco{}).
		Select("SUM(entrada - salida)").
		Where("cuenta_id = ? AND fecha >= ?", cuentaID, desde).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
