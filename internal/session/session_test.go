package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll/internal/domain/auth"
	cryptoutil "payroll/internal/platform/crypto"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "ops@acme.test",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return signed
}

func TestSessionSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	crypto, err := cryptoutil.New("correct horse battery staple")
	require.NoError(t, err)

	store, err := Open(path, crypto, nil)
	require.NoError(t, err)
	assert.False(t, store.LoggedIn())

	user := auth.User{UserID: 7, Email: "ops@acme.test", Role: auth.RoleOrganization}
	require.NoError(t, store.Save("tok-1", user))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(raw), "ops@acme.test"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reopened, err := Open(path, crypto, nil)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", reopened.Token())
	got, ok := reopened.User()
	require.True(t, ok)
	assert.Equal(t, user, got)
	assert.Equal(t, auth.RoleOrganization, reopened.Role())
}

func TestClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := Open(path, nil, nil)
	require.NoError(t, err)
	require.NoError(t, store.Save("tok", auth.User{UserID: 1, Role: auth.RoleEmployee}))

	require.NoError(t, store.Clear())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, store.Token())
	assert.Equal(t, auth.Role(""), store.Role())

	require.NoError(t, store.Clear())
}

func TestWrongKeyReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	first, _ := cryptoutil.New("first")
	second, _ := cryptoutil.New("second")

	store, err := Open(path, first, nil)
	require.NoError(t, err)
	require.NoError(t, store.Save("tok", auth.User{Role: auth.RoleBankAdmin}))

	other, err := Open(path, second, nil)
	require.NoError(t, err)
	assert.False(t, other.LoggedIn())
}

func TestCorruptFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := Open(path, nil, nil)
	require.NoError(t, err)
	assert.False(t, store.LoggedIn())
}

func TestExpiresAt(t *testing.T) {
	store := NewMemory()
	_, ok := store.ExpiresAt()
	assert.False(t, ok)

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	require.NoError(t, store.Save(signedToken(t, exp), auth.User{Role: auth.RoleEmployee}))
	got, ok := store.ExpiresAt()
	require.True(t, ok)
	assert.True(t, exp.Equal(got))

	require.NoError(t, store.Save("not-a-jwt", auth.User{}))
	_, ok = store.ExpiresAt()
	assert.False(t, ok)
}
