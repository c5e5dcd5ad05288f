package apitest

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/agei/internal/domain"
)

type userIDKey struct{}

func userIDFrom(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey{}).(int64)
	return id
}

func bearerToken(header string) string {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Token não fornecido")
			return
		}
		userID, err := s.tokens.Validate(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Token inválido")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.Credentials
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	s.mem.mu.Lock()
	acc, ok := s.mem.accounts[strings.ToLower(strings.TrimSpace(req.Email))]
	s.mem.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "Credenciais inválidas")
		return
	}
	s.writeAuthResult(w, http.StatusOK, acc.user)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req domain.Registration
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.createAccount(req)
	if err != nil {
		writeError(w, http.StatusConflict, "Email já cadastrado")
		return
	}
	s.writeAuthResult(w, http.StatusCreated, user)
}

func (s *Server) writeAuthResult(w http.ResponseWriter, status int, user domain.User) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro ao gerar token")
		return
	}
	writeJSON(w, status, domain.AuthResult{Token: token, User: user})
}

func (s *Server) createAccount(req domain.Registration) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.passwordCost)
	if err != nil {
		return domain.User{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()

	if _, exists := s.mem.accounts[email]; exists {
		return domain.User{}, domain.ErrConflict
	}
	user := domain.User{
		ID:          s.mem.id("usuarios"),
		Name:        req.Name,
		Email:       email,
		Role:        req.Role,
		Institution: req.Institution,
		CreatedAt:   domain.NewTimestamp(s.mem.now().UTC()),
	}
	s.mem.accounts[email] = &account{user: user, passwordHash: hash}
	return user, nil
}

// AddUser registers an account directly and returns it with a valid token.
func (s *Server) AddUser(reg domain.Registration) (domain.User, string, error) {
	user, err := s.createAccount(reg)
	if err != nil {
		return domain.User{}, "", err
	}
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}
