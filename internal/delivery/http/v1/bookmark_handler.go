package v1

import (
	"net/http"

	"go-internmatch-backend/internal/delivery/http/response"
	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	bookmarkUC domain.BookmarkUsecase
}

func NewBookmarkHandler(public *gin.RouterGroup, protected *gin.RouterGroup, bookmarkUC domain.BookmarkUsecase) {
	handler := &BookmarkHandler{bookmarkUC: bookmarkUC}

	// Anonymous callers get empty results instead of 401 so the
	// dashboard can render before login completes.
	public.GET("/recruiter/bookmarks", handler.ListBookmarks)
	public.GET("/bookmarks/check/:studentID", handler.CheckBookmark)

	protected.POST("/bookmarks", handler.AddBookmark)
	protected.DELETE("/bookmarks/:studentID", handler.RemoveBookmark)
}

type addBookmarkRequest struct {
	StudentID int64 `json:"student_id" binding:"required"`
}

// AddBookmark godoc
// @Summary      Bookmark a student
// @Description  Save a student profile to the recruiter's bookmark list. Adding twice is a no-op.
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        bookmark  body      addBookmarkRequest  true  "Student Profile ID"
// @Success      201       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /bookmarks [post]
func (h *BookmarkHandler) AddBookmark(c *gin.Context) {
	var req addBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("student_id is required"))
		return
	}

	accountID := c.GetInt64(string(domain.KeyAccountID))

	created, err := h.bookmarkUC.Add(c.Request.Context(), accountID, req.StudentID)
	if err != nil {
		c.Error(err)
		return
	}

	if !created {
		response.Success(c, http.StatusOK, "Bookmark already exists", nil)
		return
	}

	response.Success(c, http.StatusCreated, "Bookmark added", nil)
}

func (h *BookmarkHandler) RemoveBookmark(c *gin.Context) {
	studentID, err := parseIDParam(c, "studentID")
	if err != nil {
		c.Error(err)
		return
	}

	accountID := c.GetInt64(string(domain.KeyAccountID))

	if err := h.bookmarkUC.Remove(c.Request.Context(), accountID, studentID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Bookmark removed", nil)
}

func (h *BookmarkHandler) CheckBookmark(c *gin.Context) {
	studentID, err := parseIDParam(c, "studentID")
	if err != nil {
		c.Error(err)
		return
	}

	accountID := c.GetInt64(string(domain.KeyAccountID))

	bookmarked, err := h.bookmarkUC.IsBookmarked(c.Request.Context(), accountID, studentID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Bookmark status retrieved", gin.H{"is_bookmarked": bookmarked})
}

// ListBookmarks godoc
// @Summary      List bookmarked students
// @Tags         bookmarks
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.StudentSummary}
// @Router       /recruiter/bookmarks [get]
func (h *BookmarkHandler) ListBookmarks(c *gin.Context) {
	accountID := c.GetInt64(string(domain.KeyAccountID))

	students, err := h.bookmarkUC.ListForRecruiter(c.Request.Context(), accountID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Bookmarks retrieved", students)
}
