package v1

import (
	"net/http"
	"strings"

	"go-internmatch-backend/config"
	"go-internmatch-backend/internal/delivery/http/middleware"
	"go-internmatch-backend/internal/delivery/http/response"
	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	otpUC  domain.OTPUsecase
	config *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, otpUC domain.OTPUsecase, paramsConfig *config.Config) {
	handler := &AuthHandler{
		authUC: authUC,
		otpUC:  otpUC,
		config: paramsConfig,
	}

	// Public Routes
	public.POST("/signup", handler.Signup)
	public.POST("/login", handler.Login)

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/verify-otp", handler.VerifyOTP)
		publicAuth.POST("/resend-otp", handler.ResendOTP)
	}

	// Protected Routes
	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.POST("/logout", handler.Logout)
		protectedAuth.GET("/user/profile", handler.UserProfile)
	}
}

// Signup godoc
// @Summary      User Registration
// @Description  Register a new account with email, password, name and role. Recruiters receive a verification OTP by email.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signup  body      domain.SignupRequest  true  "Registration Details"
// @Success      201     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req domain.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Missing fields"))
		return
	}

	account, err := h.authUC.Signup(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	message := "User created successfully"
	if account.Role == domain.RoleRecruiter {
		message = "User created. Please verify your email with the OTP sent."
	}

	response.Success(c, http.StatusCreated, message, gin.H{
		"id":          account.ID,
		"email":       account.Email,
		"role":        account.Role,
		"is_verified": account.IsVerified,
	})
}

// Login godoc
// @Summary      User Login
// @Description  Authenticate with email, password and role. Sets an HTTP-only session cookie on success.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      domain.LoginRequest  true  "Login Details"
// @Success      200    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Missing fields"))
		return
	}

	account, token, err := h.authUC.Login(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	h.setSessionCookie(c, token, h.config.SessionTTLHours*3600)

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"id":          account.ID,
		"email":       account.Email,
		"name":        account.Name,
		"role":        account.Role,
		"is_verified": account.IsVerified,
	})
}

// VerifyOTP godoc
// @Summary      Verify Email OTP
// @Description  Validate the 6-digit OTP sent to a recruiter's email and mark the account verified.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        verify  body      domain.VerifyOTPRequest  true  "Verification Details"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req domain.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Email, OTP and type are required"))
		return
	}

	if err := h.otpUC.Verify(c.Request.Context(), req.Email, req.OTP); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Email verified successfully", nil)
}

func (h *AuthHandler) ResendOTP(c *gin.Context) {
	var req domain.ResendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Email and type are required"))
		return
	}

	if err := h.otpUC.Resend(c.Request.Context(), req.Email); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OTP sent successfully", nil)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookieName)
	if err == nil && token != "" {
		if err := h.authUC.Logout(c.Request.Context(), token); err != nil {
			c.Error(err)
			return
		}
	}

	h.setSessionCookie(c, "", -1)

	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

// UserProfile godoc
// @Summary      Current User Profile
// @Description  Return the authenticated account together with its role-specific profile, if one exists.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/user/profile [get]
func (h *AuthHandler) UserProfile(c *gin.Context) {
	accountID := c.GetInt64(string(domain.KeyAccountID))

	view, err := h.authUC.CurrentUser(c.Request.Context(), accountID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User profile retrieved", view)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	secure := strings.HasPrefix(h.config.FrontendURL, "https://")
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", secure, true)
}
