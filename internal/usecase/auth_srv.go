package usecase

import (
	"context"
	"errors"
	"time"

	"agro-marketplace/internal/data/entity"
	"agro-marketplace/internal/data/repository"
	"agro-marketplace/internal/dto/request"
	"agro-marketplace/internal/dto/response"
	"agro-marketplace/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	CurrentUser(ctx context.Context, userID string) (*response.MeResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwt      utils.JWTConfig
	log      *zap.Logger
	now      func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, jwt utils.JWTConfig, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		jwt:      jwt,
		log:      log,
		now:      time.Now,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, utils.ErrValidation("Missing required fields", errs)
	}

	// 2. Check email is free. The unique index still guards the insert.
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrInternal("Registration failed", err)
	}
	if existing != nil {
		s.log.Warn("Register with existing email", zap.String("email", req.Email))
		return nil, utils.ErrConflict("Email already registered")
	}

	// 3. Hash password
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, utils.ErrInternal("Registration failed", err)
	}

	// 4. Save user
	now := s.now().UTC()
	user := &entity.User{
		ID:           primitive.NewObjectID(),
		Email:        req.Email,
		PasswordHash: hashed,
		Name:         req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.log.Warn("Register lost race on email", zap.String("email", req.Email))
			return nil, utils.ErrConflict("Email already registered")
		}
		return nil, utils.ErrInternal("Registration failed", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.Hex()),
		zap.String("email", user.Email))

	public := response.UserToResponse(user)
	public.ID = ""

	return &response.RegisterResponse{
		Status:  "success",
		Message: "Registration successful",
		UserID:  user.ID.Hex(),
		User:    public,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, utils.ErrValidation("Missing email or password", errs)
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrInternal("Login failed", err)
	}

	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, utils.ErrAuth("Invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.Hex()))
		return nil, utils.ErrAuth("Invalid credentials")
	}

	token, err := utils.GenerateAccessToken(user.ID.Hex(), user.Email, []byte(s.jwt.Secret), s.jwt.Expiry)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.Hex()))
		return nil, utils.ErrInternal("Login failed", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.Hex()))

	return &response.LoginResponse{
		AccessToken: token,
		User:        response.UserToResponse(user),
	}, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (*response.MeResponse, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		s.log.Warn("Token subject is not a user ID", zap.String("user_id", userID))
		return nil, utils.ErrNotFound("User not found")
	}

	user, err := s.userRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, utils.ErrInternal("Failed to load user", err)
	}
	if user == nil {
		return nil, utils.ErrNotFound("User not found")
	}

	return &response.MeResponse{User: response.UserToResponse(user)}, nil
}
