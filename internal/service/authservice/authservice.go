package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/evgo-rent/backend/internal/domain"
	"github.com/evgo-rent/backend/pkg/auth"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type RenterRepo interface {
	Create(ctx context.Context, renter *domain.Renter) (*domain.Renter, error)
	FindByUserID(ctx context.Context, userID int) (*domain.Renter, error)
}

type Service struct {
	userRepo    UserRepo
	renterRepo  RenterRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(userRepo UserRepo, renterRepo RenterRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    userRepo,
		renterRepo:  renterRepo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates a RENTER account together with its renter profile.
func (s *Service) Register(ctx context.Context, login, password, address string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, errors.New("username already taken")
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
		Role:         domain.RoleRenter,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	_, err = s.renterRepo.Create(ctx, &domain.Renter{
		UserID:       newUser.ID,
		Address:      address,
		RegisteredAt: time.Now(),
	})
	if err != nil {
		zap.L().Error("can't create renter: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

// GenerateToken issues a short-lived JWT carrying the actor's role and,
// for renters, the renter profile id.
func (s *Service) GenerateToken(ctx context.Context, user *domain.User) (string, error) {
	actor := domain.Actor{
		UserID:    user.ID,
		StationID: user.StationID,
		Role:      user.Role,
	}
	if user.Role == domain.RoleRenter {
		renter, err := s.renterRepo.FindByUserID(ctx, user.ID)
		if err != nil {
			return "", err
		}
		if renter != nil {
			actor.RenterID = renter.ID
		}
	}

	expirationTime := time.Now().Add(15 * time.Minute)
	token, err := s.jwtService.GenerateJWT(actor, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
