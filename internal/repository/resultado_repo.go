package repository

import (
	"context"
	"time"

	"corresponsal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResultadoRepository persists daily reconciliation snapshots.
// Intentionally no Update or Delete: a ResultadoCierre is immutable history.
type ResultadoRepository interface {
	Create(ctx context.Context, r *model.ResultadoCierre) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ResultadoCierre, error)
	ListByFecha(ctx context.Context, desde, hasta time.Time) ([]model.ResultadoCierre, error)
}

type resultadoRepo struct{ db *gorm.DB }

func NewResultadoRepository(db *gorm.DB) ResultadoRepository { return &resultadoRepo{db: db} }

func (r *resultadoRepo) Create(ctx context.Context, res *model.ResultadoCierre) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *resultadoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ResultadoCierre, error) {
	var res model.ResultadoCierre
	err := r.db.WithContext(ctx).First(&res, id).Error
	return &res, err
}

func (r *resultadoRepo) ListByFecha(ctx context.Context, desde, hasta time.Time) ([]model.ResultadoCierre, error) {
	var res []model.ResultadoCierre
	err := r.db.WithContext(ctx).
		Where("fecha >= ? AND fecha <= ?", desde.Format("2006-01-02"), hasta.Format("2006-01-02")).
		Order("fecha DESC, guardado_en DESC").
		Find(&res).Error
	return res, err
}
