package v1

import (
	"net/http"

	"go-internmatch-backend/internal/delivery/http/response"
	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RecruiterHandler struct {
	recruiterUC domain.RecruiterUsecase
	studentUC   domain.StudentUsecase
}

func NewRecruiterHandler(public *gin.RouterGroup, recruiterUC domain.RecruiterUsecase, studentUC domain.StudentUsecase) {
	handler := &RecruiterHandler{recruiterUC: recruiterUC, studentUC: studentUC}

	recruiter := public.Group("/recruiter")
	{
		recruiter.GET("/students", handler.ListStudents)
		recruiter.POST("/profile", handler.CreateProfile)
		// ":id" also accepts the literal "me", resolved from the
		// session; gin cannot register the two as sibling routes.
		recruiter.GET("/profile/:id", handler.GetProfile)
		recruiter.PUT("/profile/:id", handler.UpdateProfile)
	}
}

// ListStudents godoc
// @Summary      Browse student profiles
// @Description  List all student profiles as summary cards for the recruiter dashboard.
// @Tags         recruiter
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.StudentSummary}
// @Router       /recruiter/students [get]
func (h *RecruiterHandler) ListStudents(c *gin.Context) {
	students, err := h.studentUC.ListStudents(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Students retrieved", students)
}

// GetProfile godoc
// @Summary      Get recruiter profile
// @Description  Fetch a recruiter profile by account ID, or the session's own profile via /recruiter/profile/me.
// @Tags         recruiter
// @Produce      json
// @Param        id   path      string  true  "Account ID or 'me'"
// @Success      200  {object}  response.Response{data=domain.RecruiterProfile}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recruiter/profile/{id} [get]
func (h *RecruiterHandler) GetProfile(c *gin.Context) {
	var accountID int64
	if c.Param("id") == "me" {
		accountID = c.GetInt64(string(domain.KeyAccountID))
		if accountID == 0 {
			c.Error(apperror.Unauthorized("Authentication required"))
			return
		}
	} else {
		var err error
		accountID, err = parseIDParam(c, "id")
		if err != nil {
			c.Error(err)
			return
		}
	}

	profile, err := h.recruiterUC.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recruiter profile retrieved", profile)
}

// CreateProfile godoc
// @Summary      Create recruiter profile
// @Description  Create the recruiter profile for a verified recruiter account. Fails if one already exists.
// @Tags         recruiter
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.CreateRecruiterProfileRequest  true  "Profile Details"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /recruiter/profile [post]
func (h *RecruiterHandler) CreateProfile(c *gin.Context) {
	var req domain.CreateRecruiterProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("account_id is required"))
		return
	}

	id, err := h.recruiterUC.CreateProfile(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Recruiter profile created", gin.H{"id": id})
}

func (h *RecruiterHandler) UpdateProfile(c *gin.Context) {
	accountID, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var update domain.RecruiterProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.recruiterUC.UpdateProfile(c.Request.Context(), accountID, update); err != nil {
		c.Error(err)
		return
	}

	profile, err := h.recruiterUC.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recruiter profile updated", profile)
}
