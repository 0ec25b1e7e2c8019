package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/northwind-labs/northwind-api/services"
)

// EmployeeController handles the /v1/employees routes, including
// photo upload and retrieval.
type EmployeeController struct {
	service *services.EmployeeService
	log     zerolog.Logger
}

// NewEmployeeController creates an employee controller.
func NewEmployeeController(service *services.EmployeeService, log zerolog.Logger) *EmployeeController {
	return &EmployeeController{
		service: service,
		log:     log.With().Str("controller", "employee").Logger(),
	}
}

// GetAll handles GET /v1/employees/?page=n
func (ctl *EmployeeController) GetAll(c *gin.Context) {
	page := c.DefaultQuery("page", "1")

	employees, err := ctl.service.GetAllEmployees(page)
	if err != nil {
		respondError(c, ctl.log, "get_all_employees", err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// Get handles GET /v1/employees/:id
func (ctl *EmployeeController) Get(c *gin.Context) {
	employeeID := c.Param("id")

	employee, err := ctl.service.GetEmployee(employeeID)
	if err != nil {
		respondError(c, ctl.log, "get_employee", err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// UploadPhoto handles POST /v1/employees/:id/photo with a multipart
// "photo" file field.
func (ctl *EmployeeController) UploadPhoto(c *gin.Context) {
	employeeID := c.Param("id")

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}

	key, err := ctl.service.UploadPhoto(employeeID, fileHeader)
	if err != nil {
		respondError(c, ctl.log, "upload_employee_photo", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Photo uploaded successfully!",
		"photo_path": key,
	})
}

// GetPhoto handles GET /v1/employees/:id/photo
func (ctl *EmployeeController) GetPhoto(c *gin.Context) {
	employeeID := c.Param("id")

	url, err := ctl.service.GetPhotoURL(employeeID)
	if err != nil {
		respondError(c, ctl.log, "get_employee_photo", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}
