package dto

import "time"

// CreateManufacturerRequest entrada para crear un laboratorio.
type CreateManufacturerRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

// UpdateManufacturerRequest entrada para actualizar un laboratorio.
type UpdateManufacturerRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=200"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
}

// ManufacturerResponse salida de un laboratorio.
type ManufacturerResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ManufacturerListResponse lista paginada de laboratorios.
type ManufacturerListResponse struct {
	Items []ManufacturerResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// CreateStoreRequest entrada para crear una sucursal.
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateStoreRequest entrada para actualizar una sucursal.
type UpdateStoreRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// StoreResponse salida de una sucursal.
type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreListResponse lista paginada de sucursales.
type StoreListResponse struct {
	Items []StoreResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// CreatePatientRequest entrada para crear un paciente.
type CreatePatientRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

// UpdatePatientRequest entrada para actualizar un paciente.
type UpdatePatientRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// PatientResponse salida de un paciente.
type PatientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PatientListResponse lista paginada de pacientes.
type PatientListResponse struct {
	Items []PatientResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
