package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"salonbook/internal/domain"
	"salonbook/internal/pkg/response"
	"salonbook/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public read-only catalog.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/salons", h.GetSalons)
	rg.GET("/salons/:id", h.GetSalonByID)

	rg.GET("/services", h.GetServices)
	rg.GET("/services/salon/:salonId", h.GetServicesBySalon)

	rg.GET("/workers", h.GetWorkers)
	rg.GET("/workers/salon/:salonId", h.GetWorkersBySalon)
	rg.GET("/workers/:id/availability", h.GetWorkerAvailability)
}

// RegisterAdminRoutes mounts catalog mutations; callers must pass
// JWTAuth + AdminOnly first.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/salons", h.CreateSalon)
	rg.PUT("/salons/:id", h.UpdateSalon)
	rg.DELETE("/salons/:id", h.DeleteSalon)

	rg.POST("/services", h.CreateService)
	rg.PUT("/services/:id", h.UpdateService)
	rg.DELETE("/services/:id", h.DeleteService)

	rg.POST("/workers", h.CreateWorker)
	rg.PUT("/workers/:id", h.UpdateWorker)
	rg.DELETE("/workers/:id", h.DeleteWorker)
}

/* ---------- SALON HANDLERS ---------- */

func (h *Handler) GetSalons(c *gin.Context) {
	salons, err := h.service.salonRepo.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list salons")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"salons": salons})
}

func (h *Handler) GetSalonByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	salon, err := h.service.salonRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Salon not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load salon")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"salon": salon})
}

func (h *Handler) CreateSalon(c *gin.Context) {
	var req SalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	salon, err := h.service.CreateSalon(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrInvalidHours) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "open_time must be before close_time")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create salon")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"salon": salon})
}

func (h *Handler) UpdateSalon(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req SalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	salon, err := h.service.UpdateSalon(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidHours):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "open_time must be before close_time")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Salon not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update salon")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"salon": salon})
}

func (h *Handler) DeleteSalon(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.salonRepo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete salon")
		return
	}
	c.Status(http.StatusNoContent)
}

/* ---------- SERVICE HANDLERS ---------- */

func (h *Handler) GetServices(c *gin.Context) {
	services, err := h.service.serviceRepo.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list services")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": services})
}

func (h *Handler) GetServicesBySalon(c *gin.Context) {
	salonID, ok := parseID(c, "salonId")
	if !ok {
		return
	}

	services, err := h.service.serviceRepo.GetBySalonID(c.Request.Context(), salonID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list services")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": services})
}

func (h *Handler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc := &domain.SalonService{
		SalonID:         req.SalonID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
	}
	if details := validator.Validate(svc); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid service", details)
		return
	}

	if err := h.service.serviceRepo.Create(c.Request.Context(), svc); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create service")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"service": svc})
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.serviceRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load service")
		return
	}

	svc.SalonID = req.SalonID
	svc.Name = req.Name
	svc.Description = req.Description
	svc.DurationMinutes = req.DurationMinutes
	svc.Price = req.Price

	if err := h.service.serviceRepo.Update(c.Request.Context(), svc); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update service")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service": svc})
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.serviceRepo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete service")
		return
	}
	c.Status(http.StatusNoContent)
}

/* ---------- WORKER HANDLERS ---------- */

func (h *Handler) GetWorkers(c *gin.Context) {
	workers, err := h.service.workerRepo.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list workers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"workers": workers})
}

func (h *Handler) GetWorkersBySalon(c *gin.Context) {
	salonID, ok := parseID(c, "salonId")
	if !ok {
		return
	}

	workers, err := h.service.workerRepo.GetBySalonID(c.Request.Context(), salonID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list workers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"workers": workers})
}

// GetWorkerAvailability returns the worker's declared weekdays. Informational
// only; slot generation does not consult them.
func (h *Handler) GetWorkerAvailability(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if _, err := h.service.workerRepo.GetByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Worker not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load worker")
		return
	}

	weekdays, err := h.service.workerRepo.GetWeekdays(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load availability")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"availability": weekdays})
}

func (h *Handler) CreateWorker(c *gin.Context) {
	var req WorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	worker := &domain.Worker{
		SalonID:    req.SalonID,
		Name:       req.Name,
		Specialty:  req.Specialty,
		ImageURL:   req.ImageURL,
		Rating:     req.Rating,
		Experience: req.Experience,
		Weekdays:   req.Availability,
	}
	if details := validator.Validate(worker); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid worker", details)
		return
	}

	if err := h.service.workerRepo.Create(c.Request.Context(), worker); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create worker")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"worker": worker})
}

func (h *Handler) UpdateWorker(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req WorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	worker, err := h.service.workerRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Worker not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load worker")
		return
	}

	worker.SalonID = req.SalonID
	worker.Name = req.Name
	worker.Specialty = req.Specialty
	worker.ImageURL = req.ImageURL
	worker.Rating = req.Rating
	worker.Experience = req.Experience
	worker.Weekdays = req.Availability

	if err := h.service.workerRepo.Update(c.Request.Context(), worker); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update worker")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"worker": worker})
}

func (h *Handler) DeleteWorker(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.workerRepo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete worker")
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+param)
		return 0, false
	}
	return id, true
}
