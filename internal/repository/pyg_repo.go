package repository

import (
	"context"
	"time"

	"corresponsal/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PyGRepository interface {
	Create(ctx context.Context, reg *model.RegistroPyG) error
	List(ctx context.Context, desde, hasta time.Time) ([]model.RegistroPyG, error)
	// SumPorTipo returns the journal sum for one tipo ("ingreso" | "gasto")
	// within [desde, hasta].
	SumPorTipo(ctx context.Context, tipo string, desde, hasta time.Time) (decimal.Decimal, error)
}

type pygRepo struct{ db *gorm.DB }

func NewPyGRepository(db *gorm.DB) PyGRepository { return &pygRepo{db: db} }

func (r *pygRepo) Create(ctx context.Context, reg *model.RegistroPyG) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *pygRepo) List(ctx context.Context, desde, hasta time.Time) ([]model.RegistroPyG, error) {
	var regs []model.RegistroPyG
	err := r.db.WithContext(ctx).
		Where("fecha >= ? AND fecha <= ?", desde.Format("2006-01-02"), hasta.Format("2006-01-02")).
		Order("fecha DESC").
		Find(&regs).Error
	return regs, err
}

func (r *pygRepo) SumPorTipo(ctx context.Context, tipo string, desde, hasta time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&model.RegistroPyG{}).
		Select("SUM(monto)").
		Where("tipo_registro = ? AND fecha >= ? AND fecha <= ?",
			tipo, desde.Format("2006-01-02"), hasta.Format("2006-01-02")).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
