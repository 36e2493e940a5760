package repository

import (
	"context"

	"gorm.io/gorm"

	"salonbook/internal/domain"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) GetAll(ctx context.Context) ([]domain.SalonService, error) {
	var services []domain.SalonService
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&services).Error
	return services, err
}

func (r *ServiceRepository) GetBySalonID(ctx context.Context, salonID int64) ([]domain.SalonService, error) {
	var services []domain.SalonService
	err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Find(&services).Error
	return services, err
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.SalonService, error) {
	var svc domain.SalonService
	err := r.db.WithContext(ctx).First(&svc, id).Error
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *ServiceRepository) Create(ctx context.Context, svc *domain.SalonService) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *ServiceRepository) Update(ctx context.Context, svc *domain.SalonService) error {
	return r.db.WithContext(ctx).Save(svc).Error
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.SalonService{}, id).Error
}
