package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/app/auth"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/app/services"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
)

// Authenticator signs users in
type Authenticator interface {
	Login(ctx context.Context, email, password, callbackURL string) (*services.LoginResult, error)
}

// CookieConfig describes the session cookie
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthController handles sign-in and sign-out
type AuthController struct {
	authenticator Authenticator
	cookie        CookieConfig
	now           func() time.Time
	logger        zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authenticator Authenticator, cookie CookieConfig, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authenticator: authenticator,
		cookie:        cookie,
		now:           time.Now,
		logger:        logger,
	}
}

// LoginPage answers the gate's redirect for anonymous visitors
// @Summary Login page
// @Tags auth
// @Produce json
// @Param callbackUrl query string false "Where to go after signing in"
// @Success 200 {object} dto.APIResponse{data=dto.LoginPageResponse}
// @Router /login [get]
func (c *AuthController) LoginPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.LoginPageResponse{CallbackURL: ctx.Query("callbackUrl")}))
}

// Login handles user login
// @Summary User login
// @Description Checks the credentials, sets the session cookie and redirects to the callback or the user's area
// @Tags auth
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 303 "Redirect to the callback or the user's area"
// @Failure 401 {object} dto.MessageResponse "Invalid credentials."
// @Failure 429 {object} dto.ErrorResponse "Too many attempts"
// @Failure 500 {object} dto.MessageResponse "Something went wrong."
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Debug().Err(err).Msg("Incomplete sign-in submission")
		ctx.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: services.MsgInvalidCredentials})
		return
	}

	callback := req.CallbackURL
	if callback == "" {
		callback = ctx.Query("callbackUrl")
	}

	result, err := c.authenticator.Login(ctx.Request.Context(), req.Email, req.Password, callback)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: services.MsgInvalidCredentials})
			return
		}
		c.logger.Error().Err(err).Msg("Sign-in failed")
		ctx.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: services.MsgLoginFailed})
		return
	}

	maxAge := int(result.ExpiresAt.Sub(c.now()).Seconds())
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cookie.Name, result.Token, maxAge, "/", "", c.cookie.Secure, true)
	ctx.Redirect(http.StatusSeeOther, result.Redirect)
}

// Logout clears the session cookie
// @Summary User logout
// @Tags auth
// @Success 303 "Redirect to /login"
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cookie.Name, "", -1, "/", "", c.cookie.Secure, true)
	ctx.Redirect(http.StatusSeeOther, auth.LoginPath)
}
