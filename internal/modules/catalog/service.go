package catalog

import (
	"context"
	"time"

	"salonbook/internal/domain"
	"salonbook/internal/repository"
)

type Service struct {
	salonRepo   *repository.SalonRepository
	serviceRepo *repository.ServiceRepository
	workerRepo  *repository.WorkerRepository
}

func NewService(
	salonRepo *repository.SalonRepository,
	serviceRepo *repository.ServiceRepository,
	workerRepo *repository.WorkerRepository,
) *Service {
	return &Service{
		salonRepo:   salonRepo,
		serviceRepo: serviceRepo,
		workerRepo:  workerRepo,
	}
}

func (s *Service) CreateSalon(ctx context.Context, ownerUserID int64, req SalonRequest) (*domain.Salon, error) {
	if err := validateHours(req.OpenTime, req.CloseTime); err != nil {
		return nil, err
	}

	salon := &domain.Salon{
		OwnerUserID: ownerUserID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		ImageURL:    req.ImageURL,
		OpenTime:    req.OpenTime,
		CloseTime:   req.CloseTime,
		Rating:      req.Rating,
	}
	if err := s.salonRepo.Create(ctx, salon); err != nil {
		return nil, err
	}
	return salon, nil
}

func (s *Service) UpdateSalon(ctx context.Context, id int64, req SalonRequest) (*domain.Salon, error) {
	if err := validateHours(req.OpenTime, req.CloseTime); err != nil {
		return nil, err
	}

	salon, err := s.salonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	salon.Name = req.Name
	salon.Description = req.Description
	salon.Address = req.Address
	salon.Phone = req.Phone
	salon.ImageURL = req.ImageURL
	salon.OpenTime = req.OpenTime
	salon.CloseTime = req.CloseTime
	salon.Rating = req.Rating

	if err := s.salonRepo.Update(ctx, salon); err != nil {
		return nil, err
	}
	return salon, nil
}

// validateHours enforces the salon invariant: both bounds present together,
// well-formed HH:MM, open strictly before close.
func validateHours(openTime, closeTime string) error {
	if openTime == "" && closeTime == "" {
		return nil
	}
	if openTime == "" || closeTime == "" {
		return ErrInvalidHours
	}

	open, err := time.Parse("15:04", openTime)
	if err != nil {
		return ErrInvalidHours
	}
	close, err := time.Parse("15:04", closeTime)
	if err != nil {
		return ErrInvalidHours
	}
	if !open.Before(close) {
		return ErrInvalidHours
	}
	return nil
}
