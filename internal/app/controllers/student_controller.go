package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/keremavci/studentapi/internal/app/models/dto"
	"github.com/keremavci/studentapi/internal/app/repositories"
	"github.com/keremavci/studentapi/internal/app/services"
	"github.com/keremavci/studentapi/internal/middleware"
)

// StudentController handles student record and state lookup operations
type StudentController struct {
	studentService services.StudentService
	stateService   services.StateService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, stateService services.StateService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		stateService:   stateService,
		logger:         logger,
	}
}

// parseIDParam parses the id path parameter.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// GetStudents retrieves all student records
// @Summary List students
// @Description Retrieves all student records, newest first, each with its state name and subject set
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Student "Student records"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetStudent retrieves a single student record
// @Summary Get student by ID
// @Description Retrieves one student record by its ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} models.Student "Student record"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// CreateStudent creates a new student record
// @Summary Create student
// @Description Creates a student record from multipart form fields plus an optional photo file. The master row and all subject rows are written in one transaction.
// @Tags students
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string false "Student name"
// @Param age formData int false "Age"
// @Param dateOfBirth formData string false "Date of birth"
// @Param address formData string false "Address"
// @Param phoneNumber formData string false "Phone number"
// @Param stateId formData int true "State ID"
// @Param subjects formData []string false "Subject names" collectionFormat(multi)
// @Param photo formData file false "Photo"
// @Success 201 {object} models.Student "Created record; Location header points to GET-by-id"
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var form dto.StudentForm
	if err := ctx.ShouldBind(&form); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student form payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	student, err := form.ToModel()
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.studentService.CreateStudent(ctx.Request.Context(), student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentId", student.StudentID).Msg("Student created")

	ctx.Header("Location", fmt.Sprintf("/api/students/%d", student.StudentID))
	ctx.JSON(http.StatusCreated, student)
}

// UpdateStudent fully replaces a student record
// @Summary Update student
// @Description Replaces the master row and the full subject set of a student. Omitting the photo keeps the stored photo unchanged.
// @Tags students
// @Accept mpfd
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param studentId formData int true "Student ID (must match path)"
// @Param name formData string false "Student name"
// @Param age formData int false "Age"
// @Param dateOfBirth formData string false "Date of birth"
// @Param address formData string false "Address"
// @Param phoneNumber formData string false "Phone number"
// @Param stateId formData int true "State ID"
// @Param subjects formData []string false "Subject names" collectionFormat(multi)
// @Param photo formData file false "Photo"
// @Success 204 "Updated"
// @Failure 400 {object} dto.ErrorResponse "Validation failure or ID mismatch"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var form dto.StudentForm
	if err := ctx.ShouldBind(&form); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student form payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	if form.StudentID != id {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Student ID mismatch")
		errorDetail = errorDetail.WithDetails("The studentId form field must match the id in the URL")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := form.ToModel()
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.studentService.UpdateStudent(ctx.Request.Context(), student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentId", id).Msg("Student updated")

	ctx.Status(http.StatusNoContent)
}

// DeleteStudent permanently removes a student record
// @Summary Delete student
// @Description Deletes a student record; subject rows are removed by the store's cascade
// @Tags students
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 204 "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentId", id).Msg("Student deleted")

	ctx.Status(http.StatusNoContent)
}

// GetStates retrieves the state lookup data
// @Summary List states
// @Description Retrieves all states; no ordering is guaranteed
// @Tags states
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.State "States"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/states [get]
func (c *StudentController) GetStates(ctx *gin.Context) {
	states, err := c.stateService.GetAllStates(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, states)
}

// CreateState adds a new state name
// @Summary Create state
// @Description Inserts a new state name; duplicates are rejected by the store's unique constraint
// @Tags states
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStateRequest true "State name"
// @Success 200 {object} dto.StateResponse "Created state"
// @Failure 400 {object} dto.MessageResponse "Duplicate or blank state name"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /students/states [post]
func (c *StudentController) CreateState(ctx *gin.Context) {
	var req dto.CreateStateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	state, err := c.stateService.CreateState(ctx.Request.Context(), req.StateName)
	if err != nil {
		if errors.Is(err, repositories.ErrStateAlreadyExists) {
			ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "State already exists."})
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("stateId", state.StateID).Str("stateName", state.StateName).Msg("State created")

	ctx.JSON(http.StatusOK, dto.StateResponse{
		StateID:   state.StateID,
		StateName: state.StateName,
	})
}
