package config

import (
	"pdf-replace-engine/internal/domain"
	"pdf-replace-engine/internal/service"
	"pdf-replace-engine/internal/store"
	"pdf-replace-engine/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config          *AppConfig
	Logger          domain.Logger
	CredentialStore domain.CredentialStore
	DocumentStore   domain.DocumentStore
	TokenService    domain.TokenService
	AuthService     domain.AuthService
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	if config.UsingInsecureSecret() {
		appLogger.Warn("JWT_SECRET not set, using insecure compiled-in fallback; do not use in production")
	}

	hasher := service.NewBcryptHasher()

	documentStore, err := store.NewFileDocumentStore(config.GetStoragePath(), appLogger)
	if err != nil {
		return nil, err
	}

	credentialStore := store.NewFileCredentialStore(config.GetStoragePath(), hasher, appLogger)
	tokenService := service.NewJWTTokenService(config.GetJWTSecret(), credentialStore, appLogger)
	authService := service.NewAuthService(credentialStore, tokenService, config.GetTokenTTL(), appLogger)

	return &Container{
		Config:          config,
		Logger:          appLogger,
		CredentialStore: credentialStore,
		DocumentStore:   documentStore,
		TokenService:    tokenService,
		AuthService:     authService,
	}, nil
}
