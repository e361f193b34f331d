package handlers

import (
	"net/http"
	"time"

	"github.com/Meyyun/HobbyHub/internal/middleware"
	"github.com/Meyyun/HobbyHub/internal/models"
	"github.com/Meyyun/HobbyHub/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository    repositories.UserRepository
	sessionRepository repositories.SessionRepository
	jwtSecret         string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		jwtSecret:         jwtSecret,
	}
}

// RegisterAuthRoutes registers the unprotected authentication routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/signin", h.SignIn)
}

// RegisterSessionRoutes registers the routes that need a valid token
func (h *AuthHandler) RegisterSessionRoutes(g *echo.Group) {
	g.GET("/auth/session", h.Session)
	g.POST("/auth/signout", h.SignOut)
}

// Signup handles local user registration with email and password
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Check if user with this email already exists
	_, err := h.userRepository.GetUserByEmail(req.Email)
	if err == nil {
		return echo.NewHTTPError(http.StatusConflict, "User with this email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		PublicID: uuid.NewString(),
		Email:    req.Email,
		Username: req.Username,
		Password: string(hashedPassword),
	}

	if err := h.userRepository.CreateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token after signup")
	}

	identity := h.cacheIdentity(c, user)

	return c.JSON(http.StatusCreated, echo.Map{"token": token, "user": identity})
}

// SignIn handles local user authentication with email and password
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SigninRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.GetUserByEmail(req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	identity := h.cacheIdentity(c, user)

	return c.JSON(http.StatusOK, echo.Map{"token": token, "user": identity})
}

// Session restores the cached identity for the current token, the way
// the client re-reads its stored identity on load. A cache miss falls
// back to the database and re-caches.
func (h *AuthHandler) Session(c echo.Context) error {
	claims := middleware.SessionClaims(c)

	identity, err := h.sessionRepository.GetIdentity(c.Request().Context(), claims.UserID)
	if err != nil {
		c.Logger().Errorf("session cache read failed: %v", err)
	}
	if identity != nil {
		return c.JSON(http.StatusOK, identity)
	}

	user, err := h.userRepository.GetUserByID(claims.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusUnauthorized, "Session user no longer exists")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	identity = h.cacheIdentity(c, user)
	return c.JSON(http.StatusOK, identity)
}

// SignOut tears the cached session identity down
func (h *AuthHandler) SignOut(c echo.Context) error {
	claims := middleware.SessionClaims(c)

	if err := h.sessionRepository.DeleteIdentity(c.Request().Context(), claims.UserID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to clear session")
	}
	return c.NoContent(http.StatusNoContent)
}

// cacheIdentity writes the identity record to the session cache. Cache
// failures are logged, not fatal: the token alone keeps the session
// usable.
func (h *AuthHandler) cacheIdentity(c echo.Context, user *models.User) *models.SessionIdentity {
	identity := &models.SessionIdentity{
		ID:       user.PublicID,
		Email:    user.Email,
		Username: user.Username,
	}
	if err := h.sessionRepository.PutIdentity(c.Request().Context(), user.ID, identity); err != nil {
		c.Logger().Errorf("session cache write failed: %v", err)
	}
	return identity
}

// generateJWT generates a JWT token for a given user
func (h *AuthHandler) generateJWT(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)), // Token expires in 72 hours
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return "", err
	}
	return t, nil
}
