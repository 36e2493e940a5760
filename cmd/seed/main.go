package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"salonbook/internal/database"
	"salonbook/internal/domain"
	"salonbook/internal/repository"
)

type seedWorker struct {
	name       string
	specialty  string
	experience string
	rating     float64
	weekdays   []string
}

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "salon.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		logrus.Fatalf("DB connection failed: %s", err)
	}

	logrus.Info("Running migrations...")
	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("Migration failed: %s", err)
	}

	// Cleanup old data, children first.
	logrus.Info("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM worker_availabilities")
	db.Exec("DELETE FROM workers")
	db.Exec("DELETE FROM salon_services")
	db.Exec("DELETE FROM salons")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	salonRepo := repository.NewSalonRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	workerRepo := repository.NewWorkerRepository(db)

	logrus.Info("Creating users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Email:        "admin@salonbook.local",
		PasswordHash: string(adminHash),
		Name:         "Administrator",
		Role:         domain.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		logrus.Fatalf("Create admin failed: %s", err)
	}
	logrus.Info("Admin created: admin@salonbook.local / admin123")

	customerHash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
	customer := &domain.User{
		Email:        "maria@example.com",
		PasswordHash: string(customerHash),
		Name:         "Maria Lopez",
		Role:         domain.RoleCustomer,
	}
	if err := userRepo.Create(ctx, customer); err != nil {
		logrus.Fatalf("Create customer failed: %s", err)
	}

	logrus.Info("Creating salons...")
	salons := []domain.Salon{
		{
			OwnerUserID: admin.ID,
			Name:        "Elegance Beauty Studio",
			Description: "Premium salon for hair treatments and high-end coloring.",
			Address:     "Av. Principal 123, Centro",
			Phone:       "+1 555-0101",
			OpenTime:    "09:00",
			CloseTime:   "20:00",
			Rating:      4.8,
		},
		{
			OwnerUserID: admin.ID,
			Name:        "Luxury Hair Salon",
			Description: "Experts in hair transformations and international trends.",
			Address:     "Calle Comercial 456, Plaza Norte",
			Phone:       "+1 555-0102",
			OpenTime:    "10:00",
			CloseTime:   "21:00",
			Rating:      4.9,
		},
		{
			OwnerUserID: admin.ID,
			Name:        "Spa & Wellness Center",
			Description: "Full-range beauty and wellness center with facial and body treatments.",
			Address:     "Boulevard Spa 789, Zona Exclusiva",
			Phone:       "+1 555-0103",
			OpenTime:    "08:00",
			CloseTime:   "22:00",
			Rating:      4.7,
		},
		{
			OwnerUserID: admin.ID,
			Name:        "Nails & Beauty Lounge",
			Description: "Nail art specialists, hand and foot care.",
			Address:     "Centro Comercial Elite, Local 45",
			Phone:       "+1 555-0104",
			OpenTime:    "09:00",
			CloseTime:   "19:00",
			Rating:      4.6,
		},
	}
	for i := range salons {
		if err := salonRepo.Create(ctx, &salons[i]); err != nil {
			logrus.Fatalf("Create salon failed: %s", err)
		}
	}

	logrus.Info("Creating services...")
	services := map[int][]domain.SalonService{
		0: {
			{Name: "Haircut", DurationMinutes: 30, Price: 25},
			{Name: "Coloring", DurationMinutes: 120, Price: 80},
			{Name: "Styling", DurationMinutes: 60, Price: 40},
		},
		1: {
			{Name: "Premium Cut", DurationMinutes: 45, Price: 50},
			{Name: "Balayage", DurationMinutes: 150, Price: 120},
			{Name: "Keratin Treatment", DurationMinutes: 120, Price: 90},
		},
		2: {
			{Name: "Relaxing Massage", DurationMinutes: 60, Price: 55},
			{Name: "Facial Treatment", DurationMinutes: 45, Price: 45},
		},
		3: {
			{Name: "Manicure", DurationMinutes: 30, Price: 20},
			{Name: "Pedicure", DurationMinutes: 45, Price: 25},
			{Name: "Acrylic Nails", DurationMinutes: 90, Price: 40},
		},
	}
	for idx, list := range services {
		for _, svc := range list {
			svc.SalonID = salons[idx].ID
			if err := serviceRepo.Create(ctx, &svc); err != nil {
				logrus.Fatalf("Create service failed: %s", err)
			}
		}
	}

	logrus.Info("Creating workers...")
	workers := map[int][]seedWorker{
		0: {
			{"Maria Gonzalez", "Professional Colorist", "8 years of experience", 4.9,
				[]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}},
			{"Carlos Ruiz", "Cutting Stylist", "6 years of experience", 4.8,
				[]string{"Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}},
		},
		1: {
			{"Sofia Lopez", "Balayage Master", "10 years of experience", 5.0,
				[]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}},
			{"Diego Fernandez", "Celebrity Stylist", "12 years of experience", 4.9,
				[]string{"Wednesday", "Thursday", "Friday", "Saturday"}},
		},
		2: {
			{"Laura Sanchez", "Facial Therapist", "7 years of experience", 4.8,
				[]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}},
		},
		3: {
			{"Valentina Torres", "Nail Artist", "5 years of experience", 4.7,
				[]string{"Monday", "Wednesday", "Friday", "Saturday"}},
		},
	}
	for idx, list := range workers {
		for _, w := range list {
			worker := domain.Worker{
				SalonID:    salons[idx].ID,
				Name:       w.name,
				Specialty:  w.specialty,
				Experience: w.experience,
				Rating:     w.rating,
				Weekdays:   w.weekdays,
			}
			if err := workerRepo.Create(ctx, &worker); err != nil {
				logrus.Fatalf("Create worker failed: %s", err)
			}
		}
	}

	logrus.Info("Seed complete")
}
