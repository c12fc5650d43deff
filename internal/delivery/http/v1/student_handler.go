package v1

import (
	"net/http"
	"strconv"

	"go-internmatch-backend/internal/delivery/http/response"
	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	studentUC domain.StudentUsecase
}

func NewStudentHandler(public *gin.RouterGroup, studentUC domain.StudentUsecase) {
	handler := &StudentHandler{studentUC: studentUC}

	// Writes identify the owner in the body, so the whole group rides
	// the optional-session middleware.
	student := public.Group("/student")
	{
		student.GET("/profile/:id", handler.GetProfile)
		student.POST("/profile", handler.SaveProfile)
		student.GET("/projects/:id", handler.ListProjects)
		student.POST("/projects", handler.ReplaceProjects)
		student.GET("/certifications/:id", handler.ListCertifications)
		student.POST("/certifications", handler.ReplaceCertifications)
	}
}

type saveStudentProfileRequest struct {
	AccountID int64 `json:"user_id" binding:"required"`
	domain.StudentProfileUpdate
}

type replaceProjectsRequest struct {
	StudentID int64            `json:"student_id" binding:"required"`
	Projects  []domain.Project `json:"projects"`
}

type replaceCertificationsRequest struct {
	StudentID      int64                  `json:"student_id" binding:"required"`
	Certifications []domain.Certification `json:"certifications"`
}

// GetProfile godoc
// @Summary      Get student profile
// @Description  Fetch a student profile by account ID. Recruiter viewers increment the profile view counter.
// @Tags         student
// @Produce      json
// @Param        id   path      int  true  "Account ID"
// @Success      200  {object}  response.Response{data=domain.StudentProfile}
// @Failure      404  {object}  response.Response
// @Router       /student/profile/{id} [get]
func (h *StudentHandler) GetProfile(c *gin.Context) {
	accountID, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	viewerRole := c.GetString(string(domain.KeyRole))

	profile, err := h.studentUC.GetProfile(c.Request.Context(), accountID, viewerRole)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Student profile retrieved", profile)
}

// SaveProfile godoc
// @Summary      Create or update student profile
// @Description  Upsert the student profile for the given account. Omitted fields are left unchanged.
// @Tags         student
// @Accept       json
// @Produce      json
// @Param        profile  body      saveStudentProfileRequest  true  "Profile Fields"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /student/profile [post]
func (h *StudentHandler) SaveProfile(c *gin.Context) {
	var req saveStudentProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("user_id is required"))
		return
	}

	profileID, err := h.studentUC.SaveProfile(c.Request.Context(), req.AccountID, req.StudentProfileUpdate)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile saved successfully", gin.H{"id": profileID})
}

func (h *StudentHandler) ListProjects(c *gin.Context) {
	accountID, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	projects, err := h.studentUC.GetProjects(c.Request.Context(), accountID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Projects retrieved", projects)
}

// ReplaceProjects godoc
// @Summary      Replace student projects
// @Description  Replace the full project list for a student profile in a single transaction.
// @Tags         student
// @Accept       json
// @Produce      json
// @Param        projects  body      replaceProjectsRequest  true  "Project List"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Router       /student/projects [post]
func (h *StudentHandler) ReplaceProjects(c *gin.Context) {
	var req replaceProjectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("student_id is required"))
		return
	}

	count, err := h.studentUC.ReplaceProjects(c.Request.Context(), req.StudentID, req.Projects)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Projects saved successfully", gin.H{"count": count})
}

func (h *StudentHandler) ListCertifications(c *gin.Context) {
	accountID, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	certifications, err := h.studentUC.GetCertifications(c.Request.Context(), accountID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certifications retrieved", certifications)
}

func (h *StudentHandler) ReplaceCertifications(c *gin.Context) {
	var req replaceCertificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("student_id is required"))
		return
	}

	count, err := h.studentUC.ReplaceCertifications(c.Request.Context(), req.StudentID, req.Certifications)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certifications saved successfully", gin.H{"count": count})
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.BadRequest("Invalid ID")
	}
	return id, nil
}
