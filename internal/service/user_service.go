package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MengJong168/tdmmail/internal/domain"
	"github.com/MengJong168/tdmmail/internal/service/tokens"
)

const JWTTokenExpire = 1 * time.Hour

// UserService проксирует регистрацию и аутентификацию в сервис учета.
// Пароли здесь не хранятся и не проверяются, локально выпускается лишь
// jwt токен на внешний ID юзера.
type UserService struct {
	recordKeeper   RecordKeeper
	jwtTokenSecret []byte
}

func NewUserService(recordKeeper RecordKeeper, jwtTokenSecret []byte) *UserService {
	return &UserService{
		recordKeeper:   recordKeeper,
		jwtTokenSecret: jwtTokenSecret,
	}
}

type RegisterUserArgs struct {
	Username string
	Password string
}

// Register создает юзера в сервисе учета и выпускает jwt токен. Возвращает
// 3 значения: созданный юзер, токен и ошибку.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	userID, registerErr := s.recordKeeper.RegisterUser(ctx, args.Username, args.Password)
	if registerErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", registerErr)
	}

	token, tokenErr := tokens.GenerateUserJWT(userID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("registering user: %s", tokenErr.Error())
	}

	return &domain.User{ID: userID, Username: args.Username}, token, nil
}

type LoginUserArgs struct {
	Username string
	Password string
}

// Login аутентифицирует пару логин/пароль через сервис учета и выпускает
// jwt токен.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, loginErr := s.recordKeeper.LoginUser(ctx, args.Username, args.Password)
	if loginErr != nil {
		return nil, "", fmt.Errorf("login user: %w", loginErr)
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("login user: %s", tokenErr.Error())
	}

	return user, token, nil
}
