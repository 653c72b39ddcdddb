package server

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DonteRavae/livescript-server/internal/auth"
	"github.com/DonteRavae/livescript-server/internal/domain"
)

// Cookie names for the access and refresh tokens
const (
	accessCookieName  = "lat"
	refreshCookieName = "lrt"
)

const invalidCredentialsMessage = "Please enter a valid email or password"

func (s *Server) newTokenCookie(name, value string, maxAgeSeconds int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAgeSeconds,
		HttpOnly: true,
		Secure:   s.config.AppEnv == "production",
		SameSite: http.SameSiteStrictMode,
	}
}

func (s *Server) setTokenCookies(c echo.Context, tokens domain.TokenPair) {
	c.SetCookie(s.newTokenCookie(accessCookieName, tokens.AccessToken, int(auth.AccessTokenTTL.Seconds())))
	c.SetCookie(s.newTokenCookie(refreshCookieName, tokens.RefreshToken, int(auth.RefreshTokenTTL.Seconds())))
}

func (s *Server) handleRegister(c echo.Context) error {
	var creds domain.Credentials
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, domain.NewAuthResponse(false, invalidCredentialsMessage))
	}

	if !auth.ValidateEmail(creds.Email) || !auth.ValidatePassword(creds.Password) {
		return c.JSON(http.StatusBadRequest, domain.NewAuthResponse(false, invalidCredentialsMessage))
	}

	tokens, err := s.auth.Register(c.Request().Context(), creds)
	if err != nil {
		slog.Error("registration failed", "error", err)
		return c.JSON(http.StatusInternalServerError, domain.NewAuthResponse(false, err.Error()))
	}

	s.setTokenCookies(c, tokens)
	return c.JSON(http.StatusCreated, domain.NewAuthResponse(true, "Successfully created new user. Welcome!"))
}

func (s *Server) handleLogin(c echo.Context) error {
	var creds domain.Credentials
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, domain.NewAuthResponse(false, invalidCredentialsMessage))
	}

	if !auth.ValidateEmail(creds.Email) || !auth.ValidatePassword(creds.Password) {
		return c.JSON(http.StatusBadRequest, domain.NewAuthResponse(false, invalidCredentialsMessage))
	}

	tokens, err := s.auth.Login(c.Request().Context(), creds)
	if err != nil {
		slog.Error("login failed", "error", err)
		return c.JSON(http.StatusInternalServerError, domain.NewAuthResponse(false, err.Error()))
	}

	s.setTokenCookies(c, tokens)
	return c.JSON(http.StatusOK, domain.NewAuthResponse(true, "Successful login. Welcome!"))
}

func (s *Server) handleLogout(c echo.Context) error {
	cookie, err := c.Cookie(accessCookieName)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, domain.NewAuthResponse(false, "Oops. Please try again."))
	}

	claims, err := s.tokens.DecodeAccessToken(cookie.Value)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.NewAuthResponse(false, "Invalid token."))
	}

	if err := s.auth.Logout(c.Request().Context(), claims.Subject); err != nil {
		slog.Error("logout failed", "error", err, "user_id", claims.Subject)
		return c.JSON(http.StatusInternalServerError, domain.NewAuthResponse(false, err.Error()))
	}

	c.SetCookie(s.newTokenCookie(accessCookieName, "", -1))
	return c.JSON(http.StatusOK, domain.NewAuthResponse(true, ""))
}

func (s *Server) handleRefresh(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, domain.NewAuthResponse(false, ""))
	}

	claims, err := s.tokens.DecodeRefreshToken(cookie.Value)
	if err != nil {
		return c.JSON(http.StatusForbidden, domain.NewAuthResponse(false, "Invalid token"))
	}

	accessToken, err := s.auth.Refresh(c.Request().Context(), claims.Subject)
	if err != nil {
		slog.Error("token refresh failed", "error", err, "user_id", claims.Subject)
		return c.JSON(http.StatusInternalServerError, domain.NewAuthResponse(false, err.Error()))
	}

	c.SetCookie(s.newTokenCookie(accessCookieName, accessToken, int(auth.AccessTokenTTL.Seconds())))
	return c.NoContent(http.StatusNoContent)
}
