package repository

import (
	"context"
	"errors"
	"time"

	"corresponsal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TurnoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, t *model.Turno) error
	Update(ctx context.Context, tx *gorm.DB, t *model.Turno) error
	// FindAbierto returns the operator's turno abierto regardless of date,
	// or (nil, nil) when none exists.
	FindAbierto(ctx context.Context, operadorID uuid.UUID) (*model.Turno, error)
	// FindUltimoDelDia returns the operator's most recent turno for the given
	// calendar day, or (nil, nil) when none exists.
	FindUltimoDelDia(ctx context.Context, operadorID uuid.UUID, dia time.Time) (*model.Turno, error)
	List(ctx context.Context, page, limit int) ([]model.Turno, int64, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type turnoRepo struct{ db *gorm.DB }

func NewTurnoRepository(db *gorm.DB) TurnoRepository { return &turnoRepo{db: db} }

func (r *turnoRepo) DB() *gorm.DB { return r.db }

func (r *turnoRepo) Create(ctx context.Context, tx *gorm.DB, t *model.Turno) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(t).Error
}

func (r *turnoRepo) Update(ctx context.Context, tx *gorm.DB, t *model.Turno) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Save(t).Error
}

func (r *turnoRepo) FindAbierto(ctx context.Context, operadorID uuid.UUID) (*model.Turno, error) {
	var t model.Turno
	err := r.db.WithContext(ctx).
		Where("operador_id = ? AND estado = ?", operadorID, model.TurnoAbierto).
		Order("abierto_en DESC").
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *turnoRepo) FindUltimoDelDia(ctx context.Context, operadorID uuid.UUID, dia time.Time) (*model.Turno, error) {
	var t model.Turno
	err := r.db.WithContext(ctx).
		Where("operador_id = ? AND fecha = ?", operadorID, dia.Format("2006-01-02")).
		Order("abierto_en DESC").
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *turnoRepo) List(ctx context.Context, page, limit int) ([]model.Turno, int64, error) {
	var turnos []model.Turno
	var total int64
	q := r.db.WithContext(ctx).Model(&model.Turno{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("abierto_en DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&turnos).Error
	return turnos, total, err
}
