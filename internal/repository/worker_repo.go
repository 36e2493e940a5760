package repository

import (
	"context"

	"gorm.io/gorm"

	"salonbook/internal/domain"
)

type WorkerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

func (r *WorkerRepository) GetAll(ctx context.Context) ([]domain.Worker, error) {
	var workers []domain.Worker
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&workers).Error
	if err != nil {
		return nil, err
	}
	return r.attachWeekdays(ctx, workers)
}

func (r *WorkerRepository) GetBySalonID(ctx context.Context, salonID int64) ([]domain.Worker, error) {
	var workers []domain.Worker
	err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Find(&workers).Error
	if err != nil {
		return nil, err
	}
	return r.attachWeekdays(ctx, workers)
}

func (r *WorkerRepository) GetByID(ctx context.Context, id int64) (*domain.Worker, error) {
	var worker domain.Worker
	err := r.db.WithContext(ctx).First(&worker, id).Error
	if err != nil {
		return nil, err
	}

	weekdays, err := r.GetWeekdays(ctx, worker.ID)
	if err != nil {
		return nil, err
	}
	worker.Weekdays = weekdays
	return &worker, nil
}

// Create inserts the worker together with its weekday rows.
func (r *WorkerRepository) Create(ctx context.Context, worker *domain.Worker) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(worker).Error; err != nil {
			return err
		}
		return replaceWeekdays(tx, worker.ID, worker.Weekdays)
	})
}

// Update saves the worker and replaces its weekday rows wholesale.
func (r *WorkerRepository) Update(ctx context.Context, worker *domain.Worker) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(worker).Error; err != nil {
			return err
		}
		return replaceWeekdays(tx, worker.ID, worker.Weekdays)
	})
}

func (r *WorkerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("worker_id = ?", id).
			Delete(&domain.WorkerAvailability{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Worker{}, id).Error
	})
}

func (r *WorkerRepository) GetWeekdays(ctx context.Context, workerID int64) ([]string, error) {
	var weekdays []string
	err := r.db.WithContext(ctx).
		Model(&domain.WorkerAvailability{}).
		Where("worker_id = ?", workerID).
		Order("id").
		Pluck("weekday", &weekdays).Error
	return weekdays, err
}

func (r *WorkerRepository) attachWeekdays(ctx context.Context, workers []domain.Worker) ([]domain.Worker, error) {
	if len(workers) == 0 {
		return workers, nil
	}

	ids := make([]int64, 0, len(workers))
	for _, w := range workers {
		ids = append(ids, w.ID)
	}

	var rows []domain.WorkerAvailability
	err := r.db.WithContext(ctx).
		Where("worker_id IN ?", ids).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	byWorker := make(map[int64][]string, len(workers))
	for _, row := range rows {
		byWorker[row.WorkerID] = append(byWorker[row.WorkerID], row.Weekday)
	}
	for i := range workers {
		workers[i].Weekdays = byWorker[workers[i].ID]
	}
	return workers, nil
}

func replaceWeekdays(tx *gorm.DB, workerID int64, weekdays []string) error {
	if err := tx.Where("worker_id = ?", workerID).
		Delete(&domain.WorkerAvailability{}).Error; err != nil {
		return err
	}
	for _, day := range weekdays {
		row := domain.WorkerAvailability{WorkerID: workerID, Weekday: day}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
