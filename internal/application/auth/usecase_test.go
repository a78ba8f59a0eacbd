package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
)

type fakeUserRepo struct {
	users map[string]*entity.User // key: username
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	cp := *user
	r.users[user.Username] = &cp
	return nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByUsernameOrEmail(username, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func testJWTConfig() JWTConfig {
	return JWTConfig{Secret: "unit-test-secret", ExpMinutes: 60, Issuer: "stock-api-test"}
}

func TestRegister_CreaUsuarioYEmiteToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWTConfig())

	out, err := uc.Register(dto.RegisterRequest{
		Username: "operador",
		Email:    "operador@example.com",
		Password: "super-secreta",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "operador", out.User.Username)
	assert.NotEmpty(t, out.User.ID)

	stored := repo.users["operador"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "super-secreta", stored.PasswordHash,
		"la contraseña nunca se guarda en claro")
}

func TestRegister_UsuarioDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Username: "operador", Email: "a@example.com", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "operador", Email: "b@example.com", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	// Mismo email con otro username también colisiona
	_, err = uc.Register(dto.RegisterRequest{Username: "otro", Email: "a@example.com", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestRegister_CamposRequeridos(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testJWTConfig())

	for _, in := range []dto.RegisterRequest{
		{Username: "", Email: "a@example.com", Password: "12345678"},
		{Username: "a", Email: "", Password: "12345678"},
		{Username: "a", Email: "a@example.com", Password: ""},
	} {
		_, err := uc.Register(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "request %+v", in)
	}
}

func TestLogin_CredencialesValidas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Username: "operador", Email: "a@example.com", Password: "super-secreta"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "operador", Password: "super-secreta"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "operador", out.User.Username)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Username: "operador", Email: "a@example.com", Password: "super-secreta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "operador", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testJWTConfig())

	_, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"usuario inexistente responde igual que password incorrecta")
}
