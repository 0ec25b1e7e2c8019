package services

import (
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/northwind-labs/northwind-api/apperrors"
	"github.com/northwind-labs/northwind-api/repositories"
	"github.com/northwind-labs/northwind-api/utils"
)

// EmployeeService serves the read-mostly employee surface plus photo
// storage. The photo store may be nil when S3 is not configured, in
// which case photo operations fail with a validation error.
type EmployeeService struct {
	employees *repositories.EmployeeRepository
	photos    PhotoStore
	log       zerolog.Logger
}

// NewEmployeeService creates an employee service.
func NewEmployeeService(employees *repositories.EmployeeRepository, photos PhotoStore, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{
		employees: employees,
		photos:    photos,
		log:       log.With().Str("service", "employee").Logger(),
	}
}

// GetAllEmployees returns one page of flattened employees.
func (s *EmployeeService) GetAllEmployees(page string) ([]map[string]any, error) {
	pageNum, err := ParsePage(page)
	if err != nil {
		s.log.Error().Str("page", page).Msg("invalid page number")
		return nil, err
	}

	employees, err := s.employees.GetPage(pageNum, DefaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("fetching employees page %d: %w", pageNum, err)
	}
	s.log.Debug().Int("count", len(employees)).Msg("returning employees")

	result := make([]map[string]any, 0, len(employees))
	for i := range employees {
		result = append(result, employees[i].Flatten())
	}
	return result, nil
}

// GetEmployee returns one employee with the flattened manager and
// territory relations nested in.
func (s *EmployeeService) GetEmployee(employeeID string) (map[string]any, error) {
	id, err := parseIntID("employee", employeeID)
	if err != nil {
		s.log.Error().Str("employee_id", employeeID).Msg("invalid employee id")
		return nil, err
	}

	employee, err := s.employees.GetByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			s.log.Error().Int("employee_id", id).Msg("employee not found")
			return nil, apperrors.NotFoundError("employee", id)
		}
		return nil, fmt.Errorf("fetching employee %d: %w", id, err)
	}

	flat := employee.Flatten()
	if employee.ReportingTo != nil {
		flat["reporting_to"] = employee.ReportingTo.Flatten()
	} else {
		flat["reporting_to"] = nil
	}
	territories := make([]map[string]any, 0, len(employee.Territories))
	for i := range employee.Territories {
		territories = append(territories, employee.Territories[i].Flatten())
	}
	flat["territories"] = territories

	return flat, nil
}

// UploadPhoto validates and stores an employee photo, recording the
// storage key on the employee row. A previously stored photo is
// replaced.
func (s *EmployeeService) UploadPhoto(employeeID string, fileHeader *multipart.FileHeader) (string, error) {
	id, err := parseIntID("employee", employeeID)
	if err != nil {
		return "", err
	}

	if s.photos == nil {
		return "", apperrors.New(apperrors.Validation, "photo storage is not configured")
	}

	if err := utils.ValidatePhotoFile(fileHeader); err != nil {
		s.log.Error().Int("employee_id", id).Err(err).Msg("photo validation failed")
		return "", apperrors.New(apperrors.Validation, "%s", err.Error())
	}

	employee, err := s.employees.GetByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return "", apperrors.NotFoundError("employee", id)
		}
		return "", fmt.Errorf("fetching employee %d: %w", id, err)
	}

	key, err := s.photos.Upload(fileHeader)
	if err != nil {
		return "", fmt.Errorf("uploading photo for employee %d: %w", id, err)
	}

	oldKey := ""
	if employee.PhotoPath != nil {
		oldKey = *employee.PhotoPath
	}
	employee.PhotoPath = &key
	if err := s.employees.Update(employee); err != nil {
		return "", fmt.Errorf("recording photo for employee %d: %w", id, err)
	}

	if oldKey != "" {
		if err := s.photos.Delete(oldKey); err != nil {
			// Orphaned object only; the new photo is already recorded
			s.log.Error().Str("key", oldKey).Err(err).Msg("failed to delete replaced photo")
		}
	}

	s.log.Debug().Int("employee_id", id).Str("key", key).Msg("photo stored")
	return key, nil
}

// GetPhotoURL returns a presigned URL for the employee's stored photo.
func (s *EmployeeService) GetPhotoURL(employeeID string) (string, error) {
	id, err := parseIntID("employee", employeeID)
	if err != nil {
		return "", err
	}

	if s.photos == nil {
		return "", apperrors.New(apperrors.Validation, "photo storage is not configured")
	}

	employee, err := s.employees.GetByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return "", apperrors.NotFoundError("employee", id)
		}
		return "", fmt.Errorf("fetching employee %d: %w", id, err)
	}

	if employee.PhotoPath == nil || *employee.PhotoPath == "" {
		return "", apperrors.New(apperrors.ResourceNotFound, "photo not found for employee with id %d", id)
	}

	url, err := s.photos.PresignedURL(*employee.PhotoPath)
	if err != nil {
		return "", fmt.Errorf("generating photo URL for employee %d: %w", id, err)
	}
	return url, nil
}
