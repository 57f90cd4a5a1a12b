package service

import (
	"context"

	"PredictAdmin/internal/model"
	"PredictAdmin/internal/repository"
)

// CreateUserRequest POST /users
type CreateUserRequest struct {
	WalletAddress string  `json:"walletAddress" validate:"required"`
	Username      *string `json:"username" validate:"omitempty,max=50"`
	AvatarImage   *string `json:"avatarImage"`
}

// UserService 用户管理，用户以 EIP-55 格式的钱包地址唯一标识
type UserService struct {
	repo repository.UserRepository
	opts Options
}

func NewUserService(repo repository.UserRepository, opts Options) *UserService {
	return &UserService{repo: repo, opts: opts.withDefaults()}
}

func (s *UserService) Create(ctx context.Context, req *CreateUserRequest) (*model.User, error) {
	if err := firstError(checkRequest(req), nonEmpty("username", req.Username)); err != nil {
		return nil, err
	}
	wallet, err := normalizeWallet("walletAddress", req.WalletAddress)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		WalletAddress: wallet,
		Username:      req.Username,
		AvatarImage:   req.AvatarImage,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, &Error{Kind: ErrConflict, Message: "wallet address or username already registered", Err: err}
		}
		return nil, storeError(err, "User", "create")
	}
	s.opts.Logger.WithField("user_id", user.ID).WithField("wallet", wallet).Info("用户已创建")
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id uint64) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "User", "get")
	}
	return user, nil
}

// GetByWallet 大小写不敏感：先转为校验和格式再查询
func (s *UserService) GetByWallet(ctx context.Context, wallet string) (*model.User, error) {
	normalized, err := normalizeWallet("walletAddress", wallet)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.GetByWallet(ctx, normalized)
	if err != nil {
		return nil, storeError(err, "User", "get")
	}
	return user, nil
}
