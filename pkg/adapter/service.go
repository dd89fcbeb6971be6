package adapter

import (
	"github.com/Wenrh2004/playground/pkg/log"
)

// Service carries what every handler needs.
type Service struct {
	Logger *log.Logger
}

func NewService(logger *log.Logger) *Service {
	return &Service{
		Logger: logger,
	}
}
