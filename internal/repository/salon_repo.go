package repository

import (
	"context"

	"gorm.io/gorm"

	"salonbook/internal/domain"
)

type SalonRepository struct {
	db *gorm.DB
}

func NewSalonRepository(db *gorm.DB) *SalonRepository {
	return &SalonRepository{db: db}
}

// GetAll returns salons, newest first.
func (r *SalonRepository) GetAll(ctx context.Context) ([]domain.Salon, error) {
	var salons []domain.Salon
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&salons).Error
	return salons, err
}

func (r *SalonRepository) GetByID(ctx context.Context, id int64) (*domain.Salon, error) {
	var salon domain.Salon
	err := r.db.WithContext(ctx).First(&salon, id).Error
	if err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *SalonRepository) Create(ctx context.Context, salon *domain.Salon) error {
	return r.db.WithContext(ctx).Create(salon).Error
}

func (r *SalonRepository) Update(ctx context.Context, salon *domain.Salon) error {
	return r.db.WithContext(ctx).Save(salon).Error
}

func (r *SalonRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Salon{}, id).Error
}
