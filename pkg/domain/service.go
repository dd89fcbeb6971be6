package domain

import (
	"github.com/Wenrh2004/playground/pkg/log"
	"github.com/Wenrh2004/playground/pkg/sid"
	"github.com/Wenrh2004/playground/pkg/transaction"
)

// Service carries what every domain service needs.
type Service struct {
	Logger *log.Logger
	Sid    *sid.Sid
	Tx     transaction.Transaction
}

func NewService(log *log.Logger, s *sid.Sid, tx transaction.Transaction) *Service {
	return &Service{
		Logger: log,
		Sid:    s,
		Tx:     tx,
	}
}
