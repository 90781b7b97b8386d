package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUserInput   = errors.New("invalid user input")
)

const tokenTTL = 24 * time.Hour

type IUserUseCase interface {
	Register(ctx context.Context, name, email, password string, consent bool) (entities.User, error)
	Login(ctx context.Context, email, password string) (token string, user entities.User, err error)
	UpdateConsent(ctx context.Context, userID int64, consent bool) (entities.User, error)
	GetByID(ctx context.Context, id int64) (entities.User, error)
}

type UserUseCase struct {
	uow       interfaces.IUnitOfWork
	users     interfaces.IUserRepository
	audit     interfaces.IAuditRepository
	jwtSecret []byte
	log       *logrus.Logger
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(uow interfaces.IUnitOfWork, users interfaces.IUserRepository, audit interfaces.IAuditRepository, jwtSecret string, log *logrus.Logger) *UserUseCase {
	return &UserUseCase{uow: uow, users: users, audit: audit, jwtSecret: []byte(jwtSecret), log: log}
}

// Register creates the account and the first entry of its consent history
// in one transaction.
func (u *UserUseCase) Register(ctx context.Context, name, email, password string, consent bool) (entities.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || !strings.Contains(email, "@") || len(password) < 8 {
		return entities.User{}, ErrInvalidUserInput
	}

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != 0 {
		return entities.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	var created entities.User
	err = u.uow.Do(ctx, func(p interfaces.RepositoryProvider) error {
		var err error
		created, err = p.Users().Create(ctx, entities.User{
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         entities.RoleClient,
			Consent:      consent,
			ConsentAt:    time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		_, err = p.Audit().AppendConsent(ctx, entities.ConsentEntry{UserID: created.ID, Consent: consent})
		return err
	})
	if err != nil {
		return entities.User{}, err
	}

	u.log.WithFields(logrus.Fields{"user_id": created.ID, "email": email}).Info("user registered")
	return created, nil
}

// Login verifies the password and issues a signed bearer token carrying
// {userId, email, role}. A session row is appended for auditing.
func (u *UserUseCase) Login(ctx context.Context, email, password string) (string, entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return "", entities.User{}, err
	}
	if user.ID == 0 {
		return "", entities.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", entities.User{}, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(tokenTTL)
	claims := jwt.MapClaims{
		"userId": user.ID,
		"email":  user.Email,
		"role":   string(user.Role),
		"jti":    uuid.NewString(),
		"exp":    expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.jwtSecret)
	if err != nil {
		return "", entities.User{}, fmt.Errorf("signing token: %w", err)
	}

	if _, err := u.audit.CreateSession(ctx, entities.Session{
		UserID:    user.ID,
		Token:     claims["jti"].(string),
		ExpiresAt: expiresAt,
	}); err != nil {
		return "", entities.User{}, fmt.Errorf("recording session: %w", err)
	}

	return token, user, nil
}

// UpdateConsent flips the flag on the account and appends an immutable
// history entry in the same transaction.
func (u *UserUseCase) UpdateConsent(ctx context.Context, userID int64, consent bool) (entities.User, error) {
	var updated entities.User
	err := u.uow.Do(ctx, func(p interfaces.RepositoryProvider) error {
		if _, err := p.Audit().AppendConsent(ctx, entities.ConsentEntry{UserID: userID, Consent: consent}); err != nil {
			return err
		}
		var err error
		updated, err = p.Users().UpdateConsent(ctx, userID, consent)
		return err
	})
	if err != nil {
		return entities.User{}, fmt.Errorf("updating consent: %w", err)
	}
	if updated.ID == 0 {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}

func (u *UserUseCase) GetByID(ctx context.Context, id int64) (entities.User, error) {
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == 0 {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
