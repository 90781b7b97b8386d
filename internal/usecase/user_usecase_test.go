package usecase

import (
	"context"
	"errors"
	"testing"

	"atelier_backend/internal/domain/entities"
	mock_interfaces "atelier_backend/internal/usecase/interfaces/mocks"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func TestUserUseCase_Register(t *testing.T) {
	t.Run("rejects short password", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil, nil, testSecret, testLogger())
		_, err := uc.Register(context.Background(), "Alice", "alice@example.com", "short", true)
		if !errors.Is(err, ErrInvalidUserInput) {
			t.Fatalf("expected ErrInvalidUserInput, got %v", err)
		}
	})

	t.Run("rejects bad email", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil, nil, testSecret, testLogger())
		_, err := uc.Register(context.Background(), "Alice", "not-an-email", "longenough", true)
		if !errors.Is(err, ErrInvalidUserInput) {
			t.Fatalf("expected ErrInvalidUserInput, got %v", err)
		}
	})

	t.Run("rejects taken email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(nil, users, nil, testSecret, testLogger())

		users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(entities.User{ID: 1}, nil)

		_, err := uc.Register(context.Background(), "Alice", "Alice@Example.com", "longenough", true)
		if !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("hashes password and records consent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mock_interfaces.NewMockIUserRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRepository(ctrl)
		uow := &fakeUnitOfWork{provider: fakeProvider{users: users, audit: audit}}
		uc := NewUserUseCase(uow, users, audit, testSecret, testLogger())

		users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.PasswordHash == "longenough" || u.PasswordHash == "" {
					t.Fatal("password must be hashed")
				}
				if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("longenough")); err != nil {
					t.Fatalf("hash does not verify: %v", err)
				}
				if u.Role != entities.RoleClient {
					t.Fatalf("expected client role, got %v", u.Role)
				}
				u.ID = 1
				return u, nil
			},
		)
		audit.EXPECT().AppendConsent(gomock.Any(), gomock.AssignableToTypeOf(entities.ConsentEntry{})).DoAndReturn(
			func(_ context.Context, e entities.ConsentEntry) (entities.ConsentEntry, error) {
				if e.UserID != 1 || !e.Consent {
					t.Fatalf("unexpected consent entry: %+v", e)
				}
				return e, nil
			},
		)

		user, err := uc.Register(context.Background(), "Alice", " Alice@Example.com ", "longenough", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Email != "alice@example.com" {
			t.Fatalf("email should be normalized, got %q", user.Email)
		}
		if !uow.committed {
			t.Fatal("expected commit")
		}
	})

	t.Run("consent history failure rolls back the account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mock_interfaces.NewMockIUserRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRepository(ctrl)
		uow := &fakeUnitOfWork{provider: fakeProvider{users: users, audit: audit}}
		uc := NewUserUseCase(uow, users, audit, testSecret, testLogger())

		users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				u.ID = 1
				return u, nil
			},
		)
		audit.EXPECT().AppendConsent(gomock.Any(), gomock.Any()).Return(entities.ConsentEntry{}, errors.New("db down"))

		user, err := uc.Register(context.Background(), "Alice", "alice@example.com", "longenough", true)
		if err == nil {
			t.Fatal("expected error")
		}
		if user.ID != 0 {
			t.Fatalf("no user should survive the rollback, got %+v", user)
		}
		if !uow.rolledBack {
			t.Fatal("expected rollback")
		}
		if uow.committed {
			t.Fatal("account must not be committed without its consent entry")
		}
	})
}

func TestUserUseCase_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	stored := entities.User{ID: 1, Email: "alice@example.com", PasswordHash: string(hash), Role: entities.RoleClient}

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(nil, users, nil, testSecret, testLogger())

		users.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(entities.User{}, nil)

		_, _, err := uc.Login(context.Background(), "nobody@example.com", "whatever")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(nil, users, nil, testSecret, testLogger())

		users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(stored, nil)

		_, _, err := uc.Login(context.Background(), "alice@example.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("issues verifiable token and records session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mock_interfaces.NewMockIUserRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRepository(ctrl)
		uc := NewUserUseCase(nil, users, audit, testSecret, testLogger())

		users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(stored, nil)
		audit.EXPECT().CreateSession(gomock.Any(), gomock.AssignableToTypeOf(entities.Session{})).DoAndReturn(
			func(_ context.Context, s entities.Session) (entities.Session, error) {
				if s.UserID != 1 || s.Token == "" || s.ExpiresAt.IsZero() {
					t.Fatalf("unexpected session: %+v", s)
				}
				return s, nil
			},
		)

		token, user, err := uc.Login(context.Background(), "alice@example.com", "correct-horse")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != 1 {
			t.Fatalf("unexpected user: %+v", user)
		}

		parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) { return []byte(testSecret), nil })
		if err != nil || !parsed.Valid {
			t.Fatalf("token does not verify: %v", err)
		}
		claims := parsed.Claims.(jwt.MapClaims)
		if claims["email"] != "alice@example.com" || claims["role"] != "client" {
			t.Fatalf("unexpected claims: %v", claims)
		}
	})

	t.Run("session record failure fails the login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mock_interfaces.NewMockIUserRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRepository(ctrl)
		uc := NewUserUseCase(nil, users, audit, testSecret, testLogger())

		users.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(stored, nil)
		audit.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(entities.Session{}, errors.New("db down"))

		token, _, err := uc.Login(context.Background(), "alice@example.com", "correct-horse")
		if err == nil {
			t.Fatal("expected error")
		}
		if token != "" {
			t.Fatal("no token should be issued when the session is not recorded")
		}
	})
}

func TestUserUseCase_UpdateConsent(t *testing.T) {
	t.Run("flips flag and appends history atomically", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mock_interfaces.NewMockIUserRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRepository(ctrl)
		uow := &fakeUnitOfWork{provider: fakeProvider{users: users, audit: audit}}
		uc := NewUserUseCase(uow, users, audit, testSecret, testLogger())

		audit.EXPECT().AppendConsent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ConsentEntry) (entities.ConsentEntry, error) { return e, nil },
		)
		users.EXPECT().UpdateConsent(gomock.Any(), int64(1), false).Return(entities.User{ID: 1, Consent: false}, nil)

		user, err := uc.UpdateConsent(context.Background(), 1, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Consent {
			t.Fatal("consent should be withdrawn")
		}
		if !uow.committed {
			t.Fatal("expected commit")
		}
	})

	t.Run("history failure rolls back the flip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mock_interfaces.NewMockIUserRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRepository(ctrl)
		uow := &fakeUnitOfWork{provider: fakeProvider{users: users, audit: audit}}
		uc := NewUserUseCase(uow, users, audit, testSecret, testLogger())

		audit.EXPECT().AppendConsent(gomock.Any(), gomock.Any()).Return(entities.ConsentEntry{}, errors.New("db"))

		_, err := uc.UpdateConsent(context.Background(), 1, false)
		if err == nil {
			t.Fatal("expected error")
		}
		if !uow.rolledBack {
			t.Fatal("expected rollback")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mock_interfaces.NewMockIUserRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRepository(ctrl)
		uow := &fakeUnitOfWork{provider: fakeProvider{users: users, audit: audit}}
		uc := NewUserUseCase(uow, users, audit, testSecret, testLogger())

		audit.EXPECT().AppendConsent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ConsentEntry) (entities.ConsentEntry, error) { return e, nil },
		)
		users.EXPECT().UpdateConsent(gomock.Any(), int64(9), true).Return(entities.User{}, nil)

		_, err := uc.UpdateConsent(context.Background(), 9, true)
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
