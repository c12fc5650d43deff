package v1

import (
	"net/http"

	"go-internmatch-backend/config"
	"go-internmatch-backend/internal/delivery/http/middleware"
	"go-internmatch-backend/internal/delivery/http/response"
	"go-internmatch-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	OTPUC       domain.OTPUsecase
	StudentUC   domain.StudentUsecase
	RecruiterUC domain.RecruiterUsecase
	BookmarkUC  domain.BookmarkUsecase
	AssetUC     domain.AssetUsecase
	Sessions    domain.SessionRepository
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes resolve the session cookie when present so
	// handlers can tailor responses to the viewer.
	public := api.Group("")
	public.Use(middleware.SessionOptional(deps.Sessions))

	// Protected routes reject requests without a valid session.
	protected := api.Group("")
	protected.Use(middleware.SessionRequired(deps.Sessions))
	{
		NewAuthHandler(public, protected, deps.AuthUC, deps.OTPUC, deps.Config)
		NewStudentHandler(public, deps.StudentUC)
		NewRecruiterHandler(public, deps.RecruiterUC, deps.StudentUC)
		NewBookmarkHandler(public, protected, deps.BookmarkUC)
		NewUploadHandler(public, deps.AssetUC)
	}

	return r
}
