package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/office-seat-advisor/internal/auth"
	"github.com/iliyamo/office-seat-advisor/internal/model"
	"github.com/iliyamo/office-seat-advisor/internal/store"
)

// AuthHandler implements employee registration and login. Access tokens
// carry the identity used by the reservation endpoints.
type AuthHandler struct {
	Employees    *store.EmployeeStore
	JWTSecret    string
	AccessTTLMin int
	BcryptCost   int
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(employees *store.EmployeeStore, secret string, ttlMin, bcryptCost int) *AuthHandler {
	if employees == nil {
		panic("nil employee store passed to NewAuthHandler")
	}
	return &AuthHandler{Employees: employees, JWTSecret: secret, AccessTTLMin: ttlMin, BcryptCost: bcryptCost}
}

// Register handles POST /v1/auth/register. It creates an employee
// account and returns a fresh access token.
func (h *AuthHandler) Register(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
		Team     string `json:"team"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Email = strings.TrimSpace(strings.ToLower(body.Email))
	if body.Email == "" || body.Password == "" || strings.TrimSpace(body.FullName) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email, password and full_name are required"})
	}
	hash, err := auth.HashPassword(body.Password, h.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to hash password"})
	}
	emp := &model.Employee{
		Email:        body.Email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(body.FullName),
		Team:         strings.TrimSpace(body.Team),
	}
	if err := h.Employees.Create(c.Request().Context(), emp); err != nil {
		// Unique email constraint violations land here as well.
		return c.JSON(http.StatusConflict, echo.Map{"error": "could not create account"})
	}
	return h.issueToken(c, http.StatusCreated, emp)
}

// Login handles POST /v1/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	emp, err := h.Employees.GetByEmail(c.Request().Context(), strings.TrimSpace(strings.ToLower(body.Email)))
	if err != nil {
		if errors.Is(err, store.ErrEmployeeNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !auth.VerifyPassword(emp.PasswordHash, body.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	return h.issueToken(c, http.StatusOK, emp)
}

// Me handles GET /v1/me and echoes back the authenticated identity.
func (h *AuthHandler) Me(c echo.Context) error {
	name, team, err := employeeIdentity(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"full_name":   name,
		"team":        team,
		"occupant_id": model.DeriveOccupantID(name),
	})
}

func (h *AuthHandler) issueToken(c echo.Context, status int, emp *model.Employee) error {
	tok, err := auth.NewAccessToken(h.JWTSecret, emp.ID, emp.FullName, emp.Team, h.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to sign token"})
	}
	return c.JSON(status, echo.Map{
		"access_token": tok.Token,
		"expires_at":   tok.Exp.Format(time.RFC3339),
	})
}
