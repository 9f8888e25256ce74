// Package apitest runs an in-process fake of the hotel REST API for tests.
// It implements only the endpoints the client calls and records every
// request it receives.
package apitest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/hotelhub/internal/client/models"
	"github.com/dmitrijs2005/hotelhub/internal/common"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	BasePath        = "/rest/v1"
	AccessTokenTTL  = time.Hour
	DetailBadLogin  = "Invalid credentials"
	DetailBadToken  = "Could not validate credentials"
	DetailDuplicate = "Email already registered"
)

// Request is what the fake saw for one call.
type Request struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
}

type account struct {
	user         models.User
	passwordHash []byte
}

type Server struct {
	srv    *httptest.Server
	secret []byte

	mu       sync.Mutex
	nextID   int64
	accounts map[string]*account
	requests []Request
}

// New starts the fake. Call Close when done.
func New() *Server {
	s := &Server{
		secret:   []byte(uuid.NewString()),
		accounts: make(map[string]*account),
	}
	s.srv = httptest.NewServer(s.router())
	return s
}

// URL is the API base URL to hand to the client.
func (s *Server) URL() string {
	return s.srv.URL + BasePath
}

func (s *Server) Client() *http.Client {
	return s.srv.Client()
}

func (s *Server) Close() {
	s.srv.Close()
}

// AddUser registers an account directly, bypassing the signup endpoint.
func (s *Server) AddUser(email, password string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, _ := s.addLocked(email, password)
	return u
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// RequestsTo returns the recorded requests whose path ends with suffix.
func (s *Server) RequestsTo(suffix string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if strings.HasSuffix(r.Path, suffix) {
			out = append(out, r)
		}
	}
	return out
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record)
	r.Route(BasePath, func(r chi.Router) {
		r.Post("/auth/signup/", s.signup)
		r.Post("/auth/login/", s.login)
		r.Get("/user/me", s.me)
	})
	return r
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get(common.AuthorizationHeaderName),
			RequestID:     r.Header.Get(common.RequestIDHeaderName),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

var errDuplicate = errors.New("duplicate")

func (s *Server) addLocked(email, password string) (models.User, error) {
	if _, ok := s.accounts[email]; ok {
		return models.User{}, errDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return models.User{}, err
	}
	s.nextID++
	u := models.User{
		UserID:  s.nextID,
		Email:   email,
		Profile: models.UserProfile{PreferredLanguage: "en"},
	}
	s.accounts[email] = &account{user: u, passwordHash: hash}
	return u, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.ErrorBody{Detail: detail})
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var in models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Email == "" || in.Password == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "email and password are required")
		return
	}

	s.mu.Lock()
	u, err := s.addLocked(in.Email, in.Password)
	s.mu.Unlock()
	if errors.Is(err, errDuplicate) {
		writeDetail(w, http.StatusBadRequest, DetailDuplicate)
		return
	}
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, models.AuthResponse{
		Message: "User created successfully",
		User:    &models.SignupUser{ID: strconv.FormatInt(u.UserID, 10), Email: u.Email},
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var in models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "malformed body")
		return
	}

	s.mu.Lock()
	acc, ok := s.accounts[in.Email]
	s.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(in.Password)) != nil {
		writeDetail(w, http.StatusUnauthorized, DetailBadLogin)
		return
	}

	token, err := s.issueAccessToken(acc.user.UserID)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		UserID:       acc.user.UserID,
		IsAdmin:      acc.user.IsAdmin,
		IsStaff:      acc.user.IsStaff,
		AccessToken:  token,
		RefreshToken: uuid.NewString(),
		TokenType:    "bearer",
		ExpiresIn:    int64(AccessTokenTTL.Seconds()),
	})
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	raw, ok := strings.CutPrefix(r.Header.Get(common.AuthorizationHeaderName), common.BearerPrefix)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, DetailBadToken)
		return
	}
	id, err := s.parseAccessToken(raw)
	if err != nil {
		writeDetail(w, http.StatusUnauthorized, DetailBadToken)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.user.UserID == id {
			writeJSON(w, http.StatusOK, acc.user)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "user not found")
}

func (s *Server) issueAccessToken(userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
		ID:        uuid.NewString(),
	})
	return token.SignedString(s.secret)
}

func (s *Server) parseAccessToken(raw string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(claims.Subject, 10, 64)
}
