// Package service implements the four-RPC verifier state machine: input
// validation, precondition checks in the order the protocol requires, and
// the error mapping that surfaces through grpc codes/status values without
// standing up an RPC transport of its own.
package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/snormore/zkauth"
	"github.com/snormore/zkauth/store"
)

// Service ties an active Configuration and its Verifier to a Store. It is
// safe for concurrent use: the configuration and verifier are immutable
// after construction and every store access goes through the Store
// interface's own concurrency contract.
type Service struct {
	configuration zkauth.Configuration
	verifier      zkauth.Verifier
	store         store.Store
	logger        *slog.Logger
}

// Option configures optional Service fields.
type Option func(*Service)

// WithStore overrides the default in-memory store.
func WithStore(s store.Store) Option {
	return func(svc *Service) { svc.store = s }
}

// WithLogger overrides the default slog.Default() logger.
func WithLogger(l *slog.Logger) Option {
	return func(svc *Service) { svc.logger = l }
}

// New returns a Service bound to the given configuration and verifier. The
// verifier must match the configuration's flavor; New does not check this.
func New(configuration zkauth.Configuration, verifier zkauth.Verifier, opts ...Option) *Service {
	svc := &Service{
		configuration: configuration,
		verifier:      verifier,
		store:         store.NewDefaultMemoryStore(),
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// GetConfiguration returns the active flavor configuration unchanged.
func (s *Service) GetConfiguration(_ context.Context) (zkauth.Configuration, error) {
	return s.configuration, nil
}

// Register enrolls a new user under a freshly-computed (y1, y2) pair.
// Double registration of the same username fails with AlreadyExists.
func (s *Service) Register(_ context.Context, user, y1, y2 string) error {
	if user == "" {
		return status.Error(codes.InvalidArgument, "Invalid user argument")
	}
	y1e, err := zkauth.ParseElement(y1)
	if err != nil {
		return status.Error(codes.InvalidArgument, "Invalid y1 argument")
	}
	y2e, err := zkauth.ParseElement(y2)
	if err != nil {
		return status.Error(codes.InvalidArgument, "Invalid y2 argument")
	}
	if _, exists := s.store.GetUser(user); exists {
		return status.Error(codes.AlreadyExists, "User already registered")
	}

	s.store.InsertUser(user, store.User{Y1: y1e, Y2: y2e})
	s.logger.Debug("registered user", "user", user)
	return nil
}

// CreateAuthenticationChallenge issues a fresh challenge c for a login
// attempt against an already-registered user, and stores it keyed by a
// newly-generated auth_id.
func (s *Service) CreateAuthenticationChallenge(_ context.Context, user, r1, r2 string) (authID string, c string, err error) {
	if user == "" {
		return "", "", status.Error(codes.InvalidArgument, "Invalid user argument")
	}
	r1e, err := zkauth.ParseElement(r1)
	if err != nil {
		return "", "", status.Error(codes.InvalidArgument, "Invalid r1 argument")
	}
	r2e, err := zkauth.ParseElement(r2)
	if err != nil {
		return "", "", status.Error(codes.InvalidArgument, "Invalid r2 argument")
	}
	if _, exists := s.store.GetUser(user); !exists {
		return "", "", status.Error(codes.NotFound, "User not found")
	}

	cScalar := s.verifier.GenerateChallengeC()
	id := uuid.New()
	s.store.InsertChallenge(id, store.Challenge{Username: user, C: cScalar, R1: r1e, R2: r2e})

	s.logger.Debug("issued authentication challenge", "user", user, "auth_id", id.String())
	return id.String(), cScalar.String(), nil
}

// VerifyAuthentication checks a claimed response s against the stored
// challenge and the registered user's commitments, returning a session_id
// on success. Replaying the same successful (auth_id, s) pair returns the
// same session_id.
func (s *Service) VerifyAuthentication(_ context.Context, authID, sStr string) (sessionID string, err error) {
	sScalar, err := zkauth.ParseScalar(sStr)
	if err != nil {
		return "", status.Error(codes.InvalidArgument, "Invalid s argument")
	}
	if authID == "" {
		return "", status.Error(codes.InvalidArgument, "Invalid auth_id argument")
	}
	id, err := uuid.Parse(authID)
	if err != nil {
		return "", status.Error(codes.InvalidArgument, "Invalid auth_id argument")
	}

	challenge, ok := s.store.GetChallenge(id)
	if !ok {
		return "", status.Error(codes.NotFound, "Challenge not found")
	}
	user, ok := s.store.GetUser(challenge.Username)
	if !ok {
		return "", status.Error(codes.NotFound, "User not found")
	}

	r1p, r2p, err := s.verifier.ComputeVerificationR1R2(user.Y1, user.Y2, challenge.C, sScalar)
	if err != nil {
		return "", status.Error(codes.Internal, "Failed to compute verification")
	}

	if !r1p.Equal(challenge.R1) || !r2p.Equal(challenge.R2) {
		s.logger.Info("authentication verification failed", "user", challenge.Username)
		return "", status.Error(codes.FailedPrecondition, "Verification failed")
	}

	sessionKey := sScalar.String()
	if existing, ok := s.store.GetSession(sessionKey); ok {
		return existing.ID.String(), nil
	}
	session := store.Session{ID: uuid.New()}
	s.store.InsertSession(sessionKey, session)
	return session.ID.String(), nil
}
