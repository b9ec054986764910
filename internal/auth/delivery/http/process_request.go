package http

import (
	"github.com/gin-gonic/gin"

	"social-admin-dashboard/internal/auth"
)

func (h *handler) processSignInReq(c *gin.Context) (signInReq, error) {
	var req signInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, auth.ErrMissingCredentials
	}
	return req, nil
}

func (h *handler) processSignUpReq(c *gin.Context) (signUpReq, error) {
	var req signUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processVerifyEmailReq(c *gin.Context) (verifyEmailReq, error) {
	var req verifyEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processResendOTPReq(c *gin.Context) (resendOTPReq, error) {
	var req resendOTPReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processGoogleCallbackReq reads the callback query and the state cookie set
// by GoogleLogin.
func (h *handler) processGoogleCallbackReq(c *gin.Context) (auth.GoogleCallbackInput, error) {
	var req googleCallbackReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return auth.GoogleCallbackInput{}, err
	}
	expected, _ := c.Cookie(stateCookieName)
	return auth.GoogleCallbackInput{
		State:         req.State,
		ExpectedState: expected,
		Code:          req.Code,
	}, nil
}
