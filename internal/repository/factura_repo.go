package repository

import (
	"context"
	"time"

	"corresponsal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FacturaRepository interface {
	Create(ctx context.Context, f *model.FacturaCompra) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.FacturaCompra, error)
	Update(ctx context.Context, tx *gorm.DB, f *model.FacturaCompra) error
	List(ctx context.Context, estado string, page, limit int) ([]model.FacturaCompra, int64, error)
	// ListPorVencer returns pending invoices due on or before hasta whose
	// alert has not been sent yet.
	ListPorVencer(ctx context.Context, hasta time.Time, limit int) ([]model.FacturaCompra, error)
	// MarcarVencidas flips pendiente → vencida for invoices past due.
	// Returns the number of rows updated.
	MarcarVencidas(ctx context.Context, ahora time.Time) (int64, error)
	DB() *gorm.DB
}

type facturaRepo struct{ db *gorm.DB }

func NewFacturaRepository(db *gorm.DB) FacturaRepository { return &facturaRepo{db: db} }

func (r *facturaRepo) DB() *gorm.DB { return r.db }

func (r *facturaRepo) Create(ctx context.Context, f *model.FacturaCompra) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *facturaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.FacturaCompra, error) {
	var f model.FacturaCompra
	err := r.db.WithContext(ctx).First(&f, id).Error
	return &f, err
}

func (r *facturaRepo) Update(ctx context.Context, tx *gorm.DB, f *model.FacturaCompra) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Save(f).Error
}

func (r *facturaRepo) List(ctx context.Context, estado string, page, limit int) ([]model.FacturaCompra, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.FacturaCompra{})
	if estado != "" {
		q = q.Where("estado = ?", estado)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var facturas []model.FacturaCompra
	err := q.Order("fecha_vencimiento ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&facturas).Error
	return facturas, total, err
}

func (r *facturaRepo) ListPorVencer(ctx context.Context, hasta time.Time, limit int) ([]model.FacturaCompra, error) {
	var facturas []model.FacturaCompra
	err := r.db.WithContext(ctx).
		Where("estado = ? AND alerta_enviada = false AND fecha_vencimiento <= ?",
			model.FacturaPendiente, hasta.Format("2006-01-02")).
		Order("fecha_vencimiento ASC").
		Limit(limit).
		Find(&facturas).Error
	return facturas, err
}

func (r *facturaRepo) MarcarVencidas(ctx context.Context, ahora time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.FacturaCompra{}).
		Where("estado = ? AND fecha_vencimiento < ?", model.FacturaPendiente, ahora.Format("2006-01-02")).
		Update("estado", model.FacturaVencida)
	return res.RowsAffected, res.Error
}
