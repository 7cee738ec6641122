package usecases

import (
	"workout-server/apperrors"
	"workout-server/entities"
	"workout-server/repositories"

	"golang.org/x/crypto/bcrypt"
)

const minCredentialLength = 5

type UserUseCase struct {
	UserRepo repositories.UserRepository
}

func NewUserUseCase(userRepo repositories.UserRepository) *UserUseCase {
	return &UserUseCase{UserRepo: userRepo}
}

// Signup validates credentials, hashes the password and stores the user.
func (uc *UserUseCase) Signup(username, password string) (*entities.User, error) {
	if username == "" || password == "" {
		return nil, apperrors.InvalidParameters("username or password was not provided")
	}
	if len(username) < minCredentialLength || len(password) < minCredentialLength {
		return nil, apperrors.InvalidParameters("username or password provided is not long enough")
	}

	if _, err := uc.UserRepo.GetByUsername(username); err == nil {
		return nil, apperrors.InvalidParameters("username is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := uc.UserRepo.Create(user); err != nil {
		return nil, apperrors.FromGorm(err, "user")
	}
	return user, nil
}

// Authenticate verifies a username/password pair and returns the user.
func (uc *UserUseCase) Authenticate(username, password string) (*entities.User, error) {
	user, err := uc.UserRepo.GetByUsername(username)
	if err != nil {
		return nil, apperrors.Authorization("invalid username or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.Authorization("invalid username or password")
	}
	return user, nil
}

func (uc *UserUseCase) GetByID(id string) (*entities.User, error) {
	user, err := uc.UserRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.FromGorm(err, "user")
	}
	return user, nil
}

func (uc *UserUseCase) GetAll() ([]entities.User, error) {
	return uc.UserRepo.GetAll()
}
