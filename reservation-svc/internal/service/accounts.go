package service

import (
	"log"
	"regexp"
	"strings"

	"foodiefind/reservation-svc/internal/domain"
	"foodiefind/reservation-svc/internal/persistence"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost used for new hashes.
var PasswordCost = bcrypt.DefaultCost

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Session is a signed-in user together with the token its client presents
// on later requests.
type Session struct {
	Token string
	User  domain.User
}

type AccountService struct {
	store   *Store
	adapter *persistence.Adapter
}

func NewAccountService(store *Store, adapter *persistence.Adapter) *AccountService {
	return &AccountService{store: store, adapter: adapter}
}

func validateRegistration(req RegisterRequest) map[string]string {
	errs := map[string]string{}

	switch {
	case strings.TrimSpace(req.Username) == "":
		errs["username"] = "Username is required"
	case len(req.Username) < 3:
		errs["username"] = "Username must be at least 3 characters"
	}

	switch {
	case strings.TrimSpace(req.Email) == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(req.Email):
		errs["email"] = "Email is invalid"
	}

	switch {
	case req.Password == "":
		errs["password"] = "Password is required"
	case len(req.Password) < 6:
		errs["password"] = "Password must be at least 6 characters"
	}

	if req.Password != req.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}
	return errs
}

// Register creates a customer account and starts a session for it.
func (s *AccountService) Register(req RegisterRequest) (Session, error) {
	if errs := validateRegistration(req); len(errs) > 0 {
		return Session{}, validationError(errs)
	}

	// Skips the hash for the common case; AddUser makes the final call.
	if _, exists := s.store.UserByUsername(req.Username); exists {
		return Session{}, errUsernameTaken()
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return Session{}, err
	}

	user, ok := s.store.AddUser(domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
	})
	if !ok {
		return Session{}, errUsernameTaken()
	}
	log.Printf("Registered user %s (id %d)", user.Username, user.ID)
	return s.startSession(user), nil
}

func (s *AccountService) Login(username, password string) (Session, error) {
	errs := map[string]string{}
	if strings.TrimSpace(username) == "" {
		errs["username"] = "Username is required"
	}
	if password == "" {
		errs["password"] = "Password is required"
	}
	if len(errs) > 0 {
		return Session{}, validationError(errs)
	}

	user, ok := s.store.UserByUsername(username)
	if !ok || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return Session{}, ErrInvalidCredentials
	}
	return s.startSession(user), nil
}

// Logout ends the session held under token. Unknown tokens are ignored.
func (s *AccountService) Logout(token string) {
	if token == "" {
		return
	}
	s.adapter.Remove(persistence.SessionKey(token))
}

// Current returns the user signed in under token.
func (s *AccountService) Current(token string) (domain.User, bool) {
	if token == "" {
		return domain.User{}, false
	}
	session := persistence.Read[*domain.User](s.adapter, persistence.SessionKey(token), nil)
	if session == nil || session.ID == 0 {
		return domain.User{}, false
	}

	// The marker can outlive the account list after a clear or an import.
	user, ok := s.store.UserByID(session.ID)
	if !ok || user.Username != session.Username {
		return domain.User{}, false
	}
	return user.Public(), true
}

func (s *AccountService) startSession(u domain.User) Session {
	session := Session{Token: uuid.NewString(), User: u.Public()}
	s.adapter.Write(persistence.SessionKey(session.Token), session.User)
	return session
}

func errUsernameTaken() error {
	return validationError(map[string]string{"username": "Username already exists"})
}
