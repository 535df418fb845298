package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// handlerTestEnv wires real services on an in-memory database so handler
// tests exercise the full request path below the router.
type handlerTestEnv struct {
	db                 *database.DB
	e                  *echo.Echo
	authService        services.AuthServiceInterface
	categoryService    services.CategoryServiceInterface
	transactionService services.TransactionServiceInterface
	dashboardService   services.DashboardServiceInterface
	categoryRepo       repositories.CategoryRepositoryInterface
	transactionRepo    repositories.TransactionRepositoryInterface
}

func newHandlerTestEnv(t *testing.T) *handlerTestEnv {
	db := database.SetupTestDB(t)

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	if err != nil {
		t.Fatalf("failed to generate RSA key pair: %v", err)
	}

	tokenService := services.NewTokenService(&config.JWTConfig{
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 24 * time.Hour,
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "fintrack-test",
	})

	logger := slog.Default()
	userRepo := repositories.NewUserRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)

	authService := services.NewAuthService(
		userRepo,
		repositories.NewRefreshTokenRepository(db.DB),
		repositories.NewBlacklistedTokenRepository(db.DB),
		services.NewPasswordServiceWithCost(bcrypt.MinCost),
		tokenService,
		logger,
	)
	categoryService := services.NewCategoryService(categoryRepo, nil, logger)
	transactionService := services.NewTransactionService(transactionRepo, categoryRepo, nil, logger)
	dashboardService := services.NewDashboardService(transactionService, nil, logger)

	e := echo.New()
	e.Validator = NewValidator()

	return &handlerTestEnv{
		db:                 db,
		e:                  e,
		authService:        authService,
		categoryService:    categoryService,
		transactionService: transactionService,
		dashboardService:   dashboardService,
		categoryRepo:       categoryRepo,
		transactionRepo:    transactionRepo,
	}
}

// register creates a user through the real auth service
func (env *handlerTestEnv) register(t *testing.T, username string) *models.User {
	user, err := env.authService.Register(&dto.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("failed to register user %q: %v", username, err)
	}
	return user
}

// newContext builds an echo context for the given request body
func (env *handlerTestEnv) newContext(method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return env.e.NewContext(req, rec), rec
}

// newAuthedContext builds an echo context carrying an authenticated user ID,
// the way the auth middleware would
func (env *handlerTestEnv) newAuthedContext(method, target string, body interface{}, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := env.newContext(method, target, body)
	c.Set("user_id", userID)
	return c, rec
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	var errorResp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errorResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return errorResp.Error.Code
}
