package v1

import (
	"net/http"
	"strconv"

	"go-internmatch-backend/internal/delivery/http/response"
	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	assetUC domain.AssetUsecase
}

func NewUploadHandler(public *gin.RouterGroup, assetUC domain.AssetUsecase) {
	handler := &UploadHandler{assetUC: assetUC}

	upload := public.Group("/upload")
	{
		upload.POST("/certificate", handler.uploadFor(domain.AssetCertificate))
		upload.POST("/resume", handler.uploadFor(domain.AssetResume))
	}

	public.POST("/project-video/upload", handler.uploadFor(domain.AssetProjectVideo))
	public.POST("/delete/resume", handler.DeleteResume)
	public.POST("/project-video/delete", handler.DeleteProjectVideo)
}

type deleteResumeRequest struct {
	UserID    int64  `json:"user_id" binding:"required"`
	ResumeURL string `json:"resume_url" binding:"required"`
}

type deleteProjectVideoRequest struct {
	UserID   int64  `json:"user_id" binding:"required"`
	VideoURL string `json:"video_url" binding:"required"`
}

// uploadFor handles a multipart upload for one asset kind. The form
// carries the blob under "file" and the owner account under "user_id".
func (h *UploadHandler) uploadFor(kind domain.AssetKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile("file")
		if err != nil {
			c.Error(apperror.BadRequest("No file provided"))
			return
		}

		var ownerID int64
		if raw := c.PostForm("user_id"); raw != "" {
			ownerID, err = strconv.ParseInt(raw, 10, 64)
			if err != nil {
				c.Error(apperror.BadRequest("Invalid user_id"))
				return
			}
		}

		file, err := header.Open()
		if err != nil {
			c.Error(apperror.BadRequest("Could not read uploaded file"))
			return
		}
		defer file.Close()

		url, err := h.assetUC.Upload(c.Request.Context(), kind, ownerID, header.Filename, file, header.Size, header.Header.Get("Content-Type"))
		if err != nil {
			c.Error(err)
			return
		}

		response.Success(c, http.StatusCreated, "File uploaded successfully", gin.H{"url": url})
	}
}

// DeleteResume godoc
// @Summary      Delete uploaded resume
// @Description  Remove the resume blob behind the given URL. A blob that is already gone succeeds silently.
// @Tags         upload
// @Accept       json
// @Produce      json
// @Param        resume  body      deleteResumeRequest  true  "Resume URL"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /delete/resume [post]
func (h *UploadHandler) DeleteResume(c *gin.Context) {
	var req deleteResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("user_id and resume_url are required"))
		return
	}

	if err := h.assetUC.Delete(c.Request.Context(), req.ResumeURL); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume deleted successfully", nil)
}

func (h *UploadHandler) DeleteProjectVideo(c *gin.Context) {
	var req deleteProjectVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("user_id and video_url are required"))
		return
	}

	if err := h.assetUC.Delete(c.Request.Context(), req.VideoURL); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Video deleted successfully", nil)
}
