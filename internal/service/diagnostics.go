package service

import (
	"context"
	"gigflow-api/internal/repo"
	"time"
)

const pingTimeout = 2 * time.Second

type DiagnosticsService struct {
	diagnosticsRepo repo.Diagnostics
}

func NewDiagnosticsService(repos *repo.Repositories) *DiagnosticsService {
	return &DiagnosticsService{repos.Diagnostics}
}

// Ping fails when the store doesn't answer within pingTimeout.
func (s *DiagnosticsService) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := s.diagnosticsRepo.Ping(ctx); err != nil {
		return storeError("ping", err)
	}

	return nil
}
