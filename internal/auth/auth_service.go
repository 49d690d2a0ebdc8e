package auth

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/sampita/companytree/internal/account"
	autherrors "github.com/sampita/companytree/internal/auth/errors"
	"github.com/sampita/companytree/internal/authz"
	"github.com/sampita/companytree/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, username, password string) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, accountID string) (*AuthResponse, error)
}

type service struct {
	accounts account.Repository
	guard    authz.Guard
	logger   *zap.Logger
}

func NewService(accounts account.Repository, guard authz.Guard, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{accounts: accounts, guard: guard, logger: l}
}

// Register creates the account only. The employee row is provisioned by an
// admin through the employee resource; until then the account can log in but
// the guard rejects everything it tries.
func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	acc := &account.Account{
		ID:        uuid.New(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := s.accounts.Create(ctx, acc); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return AuthResponse{}, autherrors.ErrUsernameAlreadyRegistered
		}
		s.logger.Error("register persist failed", zap.Error(err))
		return AuthResponse{}, err
	}

	s.logger.Info("account registered", zap.String("account_id", acc.ID.String()))

	return AuthResponse{
		ID:        acc.ID.String(),
		Username:  acc.Username,
		Email:     acc.Email,
		FirstName: acc.FirstName,
		LastName:  acc.LastName,
	}, nil
}

func (s *service) Login(ctx context.Context, username, password string) (string, string, AuthResponse, error) {
	acc, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.Password), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	resp := AuthResponse{
		ID:        acc.ID.String(),
		Username:  acc.Username,
		Email:     acc.Email,
		FirstName: acc.FirstName,
		LastName:  acc.LastName,
	}

	// An account without a linked employee may still log in; the guard
	// rejects its requests until an admin links one.
	if caller, err := s.guard.Caller(ctx, acc.ID.String()); err == nil {
		resp.EmployeeID = caller.EmployeeID.String()
		resp.CompanyID = caller.CompanyID.String()
		resp.IsAdmin = caller.IsAdmin
	} else if !errors.Is(err, apperror.ErrUnauthorized) {
		return "", "", AuthResponse{}, err
	}

	accessToken, err := s.generateToken(resp.ID, resp.EmployeeID, resp.CompanyID, 15*time.Minute)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(resp.ID, resp.EmployeeID, resp.CompanyID, 7*24*time.Hour)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return accessToken, refreshToken, resp, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	accountIDStr, ok := claims["account_id"].(string)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	accountID, err := uuid.Parse(accountIDStr)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrAccountNotFound
	}

	resp := AuthResponse{
		ID:        acc.ID.String(),
		Username:  acc.Username,
		Email:     acc.Email,
		FirstName: acc.FirstName,
		LastName:  acc.LastName,
	}
	if caller, err := s.guard.Caller(ctx, acc.ID.String()); err == nil {
		resp.EmployeeID = caller.EmployeeID.String()
		resp.CompanyID = caller.CompanyID.String()
		resp.IsAdmin = caller.IsAdmin
	}

	newAccess, err := s.generateToken(resp.ID, resp.EmployeeID, resp.CompanyID, 15*time.Minute)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	newRefresh, err := s.generateToken(resp.ID, resp.EmployeeID, resp.CompanyID, 7*24*time.Hour)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccess, newRefresh, resp, nil
}

func (s *service) GetMe(ctx context.Context, accountID string) (*AuthResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, autherrors.ErrInvalidToken
	}

	acc, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrAccountNotFound
	}

	resp := AuthResponse{
		ID:        acc.ID.String(),
		Username:  acc.Username,
		Email:     acc.Email,
		FirstName: acc.FirstName,
		LastName:  acc.LastName,
	}
	if caller, err := s.guard.Caller(ctx, acc.ID.String()); err == nil {
		resp.EmployeeID = caller.EmployeeID.String()
		resp.CompanyID = caller.CompanyID.String()
		resp.IsAdmin = caller.IsAdmin
	}

	return &resp, nil
}

// reusable token generator
func (s *service) generateToken(accountID, employeeID, companyID string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"account_id":  accountID,
		"employee_id": employeeID,
		"company_id":  companyID,
		"exp":         time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
