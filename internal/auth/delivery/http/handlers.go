package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"social-admin-dashboard/internal/auth"
	"social-admin-dashboard/internal/middleware"
	pkgErrors "social-admin-dashboard/pkg/errors"
	"social-admin-dashboard/pkg/response"
)

const (
	stateCookieName = "oauth_state"
	stateCookieTTL  = 10 * time.Minute
)

// SignIn godoc
// @Summary     Sign in with email and password
// @Description Logs in against the platform backend and opens a dashboard session.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signInReq true "Credentials"
// @Success     200 {object} signInResp
// @Failure     400 {object} response.Resp "Email and password are required"
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Failure     429 {object} response.Resp "Too many attempts"
// @Router      /api/v1/auth/signin [POST]
func (h *handler) SignIn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignInReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	out, err := h.uc.SignIn(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SignIn: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setSessionCookie(c, out.Token, out.Session.ExpiresAt)
	response.OK(c, h.newSignInResp(out))
}

// SignUp godoc
// @Summary     Register an account
// @Description Registers a backend account with role "user". A verification code is emailed.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signUpReq true "Account"
// @Success     200 {object} signUpResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/auth/signup [POST]
func (h *handler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignUpReq(c)
	if err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error()))
		return
	}

	out, err := h.uc.SignUp(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSignUpResp(out))
}

// VerifyEmail godoc
// @Summary     Verify an email address
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body verifyEmailReq true "Email and code"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/auth/verify-email [POST]
func (h *handler) VerifyEmail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processVerifyEmailReq(c)
	if err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error()))
		return
	}

	if err := h.uc.VerifyEmail(ctx, req.toInput()); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ResendOTP godoc
// @Summary     Resend the verification code
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body resendOTPReq true "Email"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/auth/resend-otp [POST]
func (h *handler) ResendOTP(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResendOTPReq(c)
	if err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error()))
		return
	}

	if err := h.uc.ResendOTP(ctx, auth.ResendOTPInput{Email: req.Email}); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// GoogleLogin godoc
// @Summary     Start Google sign-in
// @Description Redirects to the Google consent page, or returns its URL when format=json.
// @Tags        Auth
// @Produce     json
// @Param       format query string false "json to get the URL instead of a redirect"
// @Success     302
// @Success     200 {object} googleLoginResp
// @Failure     404 {object} response.Resp "Google sign-in is not configured"
// @Router      /api/v1/auth/google/login [GET]
func (h *handler) GoogleLogin(c *gin.Context) {
	ctx := c.Request.Context()

	state := uuid.NewString()
	u, err := h.uc.GoogleAuthURL(ctx, state)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, int(stateCookieTTL.Seconds()), "/", h.cookie.Domain, h.cookie.Secure, true)

	if c.Query("format") == "json" {
		response.OK(c, googleLoginResp{URL: u})
		return
	}
	c.Redirect(http.StatusFound, u)
}

// GoogleCallback godoc
// @Summary     Finish Google sign-in
// @Tags        Auth
// @Produce     json
// @Param       state query string true "OAuth state"
// @Param       code  query string true "Authorization code"
// @Success     200 {object} signInResp
// @Failure     401 {object} response.Resp "Invalid state"
// @Router      /api/v1/auth/google/callback [GET]
func (h *handler) GoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processGoogleCallbackReq(c)
	if err != nil {
		response.Error(c, pkgErrors.ErrBadRequest)
		return
	}

	out, err := h.uc.GoogleCallback(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.GoogleCallback: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.SetCookie(stateCookieName, "", -1, "/", h.cookie.Domain, h.cookie.Secure, true)
	h.setSessionCookie(c, out.Token, out.Session.ExpiresAt)
	response.OK(c, h.newSignInResp(out))
}

// Session godoc
// @Summary     Current session
// @Tags        Auth
// @Produce     json
// @Security    Bearer
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/session [GET]
func (h *handler) Session(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	response.OK(c, newSessionResp(sess))
}

// SignOut godoc
// @Summary     Sign out
// @Description Ends the session and unmounts every screen it opened.
// @Tags        Auth
// @Produce     json
// @Security    Bearer
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/signout [POST]
func (h *handler) SignOut(c *gin.Context) {
	ctx := c.Request.Context()

	sess, ok := middleware.GetSession(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.SignOut(ctx, sess.ID); err != nil {
		h.l.Errorf(ctx, "uc.SignOut: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.clearSessionCookie(c)
	response.OK(c, nil)
}

func (h *handler) setSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	if h.cookie.Name == "" {
		return
	}
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, maxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}

func (h *handler) clearSessionCookie(c *gin.Context) {
	if h.cookie.Name == "" {
		return
	}
	c.SetCookie(h.cookie.Name, "", -1, "/", h.cookie.Domain, h.cookie.Secure, true)
}
