package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/omg-lab/omg-backend/internal/auth"
	"github.com/omg-lab/omg-backend/internal/entity"
	"github.com/omg-lab/omg-backend/internal/repository"
)

const (
	maxFailedLogins = 5
	lockoutDuration = 15 * time.Minute
)

// AuthService registers and authenticates usuarios and issues access
// tokens. Repeated failed logins lock the account for a while.
type AuthService struct {
	usuarios repository.UsuarioRepository
	tokens   *auth.TokenManager
}

func NewAuthService(usuarios repository.UsuarioRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{usuarios: usuarios, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, req *entity.RegisterRequest) (*entity.AuthResponse, error) {
	if req.Password != req.ConfirmPassword {
		return &entity.AuthResponse{Success: false, Message: "As senhas não coincidem."}, nil
	}

	_, err := s.usuarios.FindByEmail(ctx, req.Email)
	if err == nil {
		return &entity.AuthResponse{Success: false, Message: "Email já está em uso."}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing usuario: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usuario := &entity.Usuario{
		Nome:         req.Nome,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.usuarios.Create(ctx, usuario); err != nil {
		return nil, err
	}

	slog.Info("Usuario registered", "email", usuario.Email)
	return &entity.AuthResponse{
		Success: true,
		Message: "Usuário criado com sucesso!",
		Email:   usuario.Email,
		Nome:    usuario.Nome,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req *entity.LoginRequest) (*entity.AuthResponse, error) {
	usuario, err := s.usuarios.FindByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return &entity.AuthResponse{Success: false, Message: "Email ou senha inválidos."}, nil
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if usuario.LockedUntil != nil && usuario.LockedUntil.After(now) {
		return &entity.AuthResponse{
			Success: false,
			Message: "Conta bloqueada devido a múltiplas tentativas de login. Tente novamente mais tarde.",
		}, nil
	}

	if bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.Password)) != nil {
		usuario.FailedLogins++
		if usuario.FailedLogins >= maxFailedLogins {
			lockedUntil := now.Add(lockoutDuration)
			usuario.LockedUntil = &lockedUntil
			usuario.FailedLogins = 0
			slog.Warn("Usuario locked out", "email", usuario.Email)
		}
		if err := s.usuarios.Update(ctx, usuario); err != nil {
			return nil, err
		}
		return &entity.AuthResponse{Success: false, Message: "Email ou senha inválidos."}, nil
	}

	usuario.FailedLogins = 0
	usuario.LockedUntil = nil
	usuario.UltimoAcesso = &now
	if err := s.usuarios.Update(ctx, usuario); err != nil {
		return nil, err
	}

	token, expiration, err := s.tokens.Issue(usuario)
	if err != nil {
		return nil, err
	}

	slog.Info("Usuario logged in", "email", usuario.Email)
	return &entity.AuthResponse{
		Success:    true,
		Token:      token,
		Message:    "Login realizado com sucesso!",
		Expiration: &expiration,
		Email:      usuario.Email,
		Nome:       usuario.Nome,
	}, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, req *entity.ChangePasswordRequest) (*entity.AuthResponse, error) {
	if req.NewPassword != req.ConfirmNewPassword {
		return &entity.AuthResponse{Success: false, Message: "As senhas não coincidem."}, nil
	}

	usuario, err := s.usuarios.FindByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return &entity.AuthResponse{Success: false, Message: "Usuário não encontrado."}, nil
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return &entity.AuthResponse{Success: false, Message: "Senha atual incorreta."}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	usuario.PasswordHash = string(hash)
	if err := s.usuarios.Update(ctx, usuario); err != nil {
		return nil, err
	}

	return &entity.AuthResponse{Success: true, Message: "Senha alterada com sucesso!"}, nil
}
