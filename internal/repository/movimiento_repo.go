package repository

import (
	"context"
	"time"

	"corresponsal/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MovimientoFilter narrows movement listings.
type MovimientoFilter struct {
	OperadorID *uuid.UUID
	TipoID     *uuid.UUID
	Desde      *time.Time
	Hasta      *time.Time
	Limit      int
	Offset     int
}

type MovimientoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, m *model.Movimiento) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Movimiento, error)
	Update(ctx context.Context, m *model.Movimiento) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter MovimientoFilter) ([]model.Movimiento, error)
	// SumEfectoCaja returns SUM(monto * tipo.mult_caja) over the operator's
	// movements with fecha >= desde. The signed sum every cash balance
	// computation is built on.
	SumEfectoCaja(ctx context.Context, operadorID uuid.UUID, desde time.Time) (decimal.Decimal, error)
}

type movimientoRepo struct{ db *gorm.DB }

func NewMovimientoRepository(db *gorm.DB) MovimientoRepository { return &movimientoRepo{db: db} }

func (r *movimientoRepo) Create(ctx context.Context, tx *gorm.DB, m *model.Movimiento) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(m).Error
}

func (r *movimientoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Movimiento, error) {
	var m model.Movimiento
	err := r.db.WithContext(ctx).Preload("Tipo").First(&m, id).Error
	return &m, err
}

func (r *movimientoRepo) Update(ctx context.Context, m *model.Movimiento) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *movimientoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Movimiento{}, id).Error
}

func (r *movimientoRepo) List(ctx context.Context, filter MovimientoFilter) ([]model.Movimiento, error) {
	q := r.db.WithContext(ctx).Preload("Tipo")
	if filter.OperadorID != nil {
		q = q.Where("operador_id = ?", *filter.OperadorID)
	}
	if filter.TipoID != nil {
		q = q.Where("tipo_id = ?", *filter.TipoID)
	}
	if filter.Desde != nil {
		q = q.Where("fecha >= ?", *filter.Desde)
	}
	if filter.Hasta != nil {
		q = q.Where("fecha < ?", *filter.Hasta)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}
	var movs []model.Movimiento
	err := q.Order("fecha DESC").Find(&movs).Error
	return movs, err
}

func (r *movimientoRepo) SumEfectoCaja(ctx context.Context, operadorID uuid.UUID, desde time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&model.Movimiento{}).
		Select("SUM(movimientos.monto * tipo_transaccions.mult_caja)").
		Joins("JOIN tipo_transaccions ON tipo_transaccions.id = movimientos.tipo_id").
		Where("movimientos.operador_id = ? AND movimientos.fecha >= ?", operadorID, desde).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
