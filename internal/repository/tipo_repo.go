package repository

import (
	"context"
	"errors"

	"corresponsal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TipoRepository interface {
	// FindByCodigo resolves a type by its stable configuration-time code.
	// Returns (nil, nil) when the code is unknown.
	FindByCodigo(ctx context.Context, codigo string) (*model.TipoTransaccion, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.TipoTransaccion, error)
	List(ctx context.Context) ([]model.TipoTransaccion, error)
}

type tipoRepo struct{ db *gorm.DB }

func NewTipoRepository(db *gorm.DB) TipoRepository { return &tipoRepo{db: db} }

func (r *tipoRepo) FindByCodigo(ctx context.Context, codigo string) (*model.TipoTransaccion, error) {
	var t model.TipoTransaccion
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tipoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.TipoTransaccion, error) {
	var t model.TipoTransaccion
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *tipoRepo) List(ctx context.Context) ([]model.TipoTransaccion, error) {
	var tipos []model.TipoTransaccion
	err := r.db.WithContext(ctx).Order("codigo ASC").Find(&tipos).Error
	return tipos, err
}
