package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// PatientUseCase casos de uso CRUD para pacientes.
type PatientUseCase struct {
	repo repository.PatientRepository
}

// NewPatientUseCase construye el caso de uso.
func NewPatientUseCase(repo repository.PatientRepository) *PatientUseCase {
	return &PatientUseCase{repo: repo}
}

// Create crea un paciente. Devuelve ErrDuplicate si el documento ya existe.
func (uc *PatientUseCase) Create(in dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if in.Document != "" {
		existing, _ := uc.repo.GetByDocument(in.Document)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	patient := &entity.Patient{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Document:  in.Document,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(patient); err != nil {
		return nil, err
	}
	return toPatientResponse(patient), nil
}

// GetByID obtiene un paciente por ID.
func (uc *PatientUseCase) GetByID(id string) (*dto.PatientResponse, error) {
	patient, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, nil
	}
	return toPatientResponse(patient), nil
}

// Update actualiza un paciente.
func (uc *PatientUseCase) Update(id string, in dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, nil
	}
	if in.Name != nil {
		patient.Name = *in.Name
	}
	if in.Phone != nil {
		patient.Phone = *in.Phone
	}
	if in.Email != nil {
		patient.Email = *in.Email
	}
	if in.Address != nil {
		patient.Address = *in.Address
	}
	patient.UpdatedAt = time.Now()
	if err := uc.repo.Update(patient); err != nil {
		return nil, err
	}
	return toPatientResponse(patient), nil
}

// List lista pacientes con paginación.
func (uc *PatientUseCase) List(limit, offset int) (*dto.PatientListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PatientResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPatientResponse(p))
	}
	return &dto.PatientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toPatientResponse(p *entity.Patient) *dto.PatientResponse {
	if p == nil {
		return nil
	}
	return &dto.PatientResponse{
		ID:        p.ID,
		Name:      p.Name,
		Document:  p.Document,
		Phone:     p.Phone,
		Email:     p.Email,
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
