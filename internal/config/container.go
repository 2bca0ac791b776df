package config

import (
	"phone-extractor/internal/domain"
	"phone-extractor/internal/metrics"
	"phone-extractor/internal/service"
	"phone-extractor/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config         domain.Config
	Logger         domain.Logger
	Metrics        *metrics.Metrics
	PhoneExtractor domain.PhoneExtractor
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	config, err := NewConfig()
	if err != nil {
		return nil, err
	}
	appLogger := logger.NewLogger(config.GetLogLevel())
	appMetrics := metrics.New()

	return &Container{
		Config:         config,
		Logger:         appLogger,
		Metrics:        appMetrics,
		PhoneExtractor: service.NewPhoneExtractor(appLogger, appMetrics),
	}, nil
}
