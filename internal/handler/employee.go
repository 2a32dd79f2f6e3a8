package handler

import (
	"net/http"

	"employees/internal/model"
	"employees/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// validateObjectID checks if a string is a valid MongoDB ObjectID
func validateObjectID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return err
	}
	return nil
}

// EmployeeHandler handles employee-related HTTP requests
type EmployeeHandler struct {
	employeeService service.IEmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService service.IEmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// Create handles POST /api/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var dto model.EmployeeDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", err.Error()))
		return
	}

	employee, err := dto.ToEntity()
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid employee ID format", err.Error()))
		return
	}

	created, err := h.employeeService.Create(c.Request.Context(), employee)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error(), ""))
		return
	}

	c.JSON(http.StatusCreated, created.ToDto())
}

// Get handles GET /api/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	id := c.Param("id")

	if err := validateObjectID(id); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid employee ID format", err.Error()))
		return
	}

	employee, err := h.employeeService.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error(), ""))
		return
	}
	if employee == nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Employee not found", ""))
		return
	}

	c.JSON(http.StatusOK, employee.ToDto())
}

// List handles GET /api/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error(), ""))
		return
	}

	c.JSON(http.StatusOK, model.ToDtoList(employees))
}

// Update handles PUT /api/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	id := c.Param("id")

	if err := validateObjectID(id); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid employee ID format", err.Error()))
		return
	}

	var dto model.EmployeeDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", err.Error()))
		return
	}

	// The path id addresses the record; any id in the body is ignored
	// by the service.
	employee, err := dto.ToEntity()
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid employee ID format", err.Error()))
		return
	}

	updated, err := h.employeeService.Update(c.Request.Context(), employee, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error(), ""))
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Employee not found", ""))
		return
	}

	c.JSON(http.StatusOK, updated.ToDto())
}

// Delete handles DELETE /api/employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := validateObjectID(id); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid employee ID format", err.Error()))
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Delete failed", err.Error()))
		return
	}

	c.Status(http.StatusNoContent)
}
