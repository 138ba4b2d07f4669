package services

import (
	"testing"

	"github.com/hinagiku/todo-lists-api/internal/models"
	"github.com/hinagiku/todo-lists-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) *AuthService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.List{},
		&models.Task{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewAuthService(repository.NewUserRepository(db))
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	svc := setupAuthService(t)

	user, err := svc.Register(RegisterInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.NotEqual(t, "supersecret", user.PasswordHash)

	loggedIn, err := svc.Login(LoginInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)
	require.Equal(t, user.ID, loggedIn.ID)
}

func TestAuthService_ShortCredentialsAccepted(t *testing.T) {
	svc := setupAuthService(t)

	// No length minimum beyond non-empty: short usernames and passwords register
	user, err := svc.Register(RegisterInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	loggedIn, err := svc.Login(LoginInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	require.Equal(t, user.ID, loggedIn.ID)

	_, err = svc.Register(RegisterInput{Username: "b", Password: "pw2"})
	require.NoError(t, err)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc := setupAuthService(t)

	_, err := svc.Register(RegisterInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Login(LoginInput{Username: "alice", Password: "wrongpassword"})
	require.ErrorIs(t, err, ErrBadPassword)
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	svc := setupAuthService(t)

	_, err := svc.Login(LoginInput{Username: "nobody", Password: "supersecret"})
	require.ErrorIs(t, err, ErrUnknownUser)
}

func TestAuthService_RegisterUsernameTaken(t *testing.T) {
	svc := setupAuthService(t)

	_, err := svc.Register(RegisterInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{Username: "alice", Password: "othersecret"})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc := setupAuthService(t)

	_, err := svc.Register(RegisterInput{Username: "  ", Password: "supersecret"})
	require.ErrorIs(t, err, ErrUsernameRequired)

	_, err = svc.Register(RegisterInput{Username: "alice", Password: ""})
	require.ErrorIs(t, err, ErrPasswordRequired)
}

func TestAuthService_FirstRegistrantIsAdmin(t *testing.T) {
	svc := setupAuthService(t)

	first, err := svc.Register(RegisterInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)
	require.True(t, first.IsAdmin)

	second, err := svc.Register(RegisterInput{Username: "bob", Password: "supersecret"})
	require.NoError(t, err)
	require.False(t, second.IsAdmin)
}
