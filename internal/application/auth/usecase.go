package auth

import (
	"github.com/RaGnaRoK-thor/invsys/internal/application/dto"
	"github.com/RaGnaRoK-thor/invsys/internal/domain"
	"github.com/RaGnaRoK-thor/invsys/internal/domain/entity"
	"github.com/RaGnaRoK-thor/invsys/internal/domain/repository"
	"github.com/RaGnaRoK-thor/invsys/pkg/session"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase casos de uso de autenticación: registro, login y logout.
// Las sesiones viven en el Store inyectado; el password solo existe en claro
// dentro de la petición, nunca se persiste.
type AuthUseCase struct {
	userRepo repository.UserRepository
	sessions *session.Store
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessions *session.Store) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessions: sessions}
}

// Register crea un empleado: hashea el password con bcrypt y persiste.
// Devuelve ErrEmployeeIDExists si el employee_id ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &entity.User{
		EmployeeID:   in.EmployeeID,
		PasswordHash: string(hash),
	}
	return uc.userRepo.Create(user)
}

// Login verifica employee_id/password y abre una sesión en el Store.
// Devuelve el token de sesión a colocar en la cookie. Un employee_id
// desconocido y un password incorrecto producen el mismo error.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (string, error) {
	user, err := uc.userRepo.GetByEmployeeID(in.EmployeeID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return uc.sessions.Create(user.EmployeeID), nil
}

// Logout cierra la sesión del token. Es idempotente.
func (uc *AuthUseCase) Logout(token string) {
	uc.sessions.Destroy(token)
}
