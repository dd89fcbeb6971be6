package service

import (
	"context"
	"errors"
	"time"
	
	"go.uber.org/zap"
	
	"github.com/Wenrh2004/playground/internal/compile/domain/aggregate"
	"github.com/Wenrh2004/playground/internal/compile/infrastructure/simulator"
	"github.com/Wenrh2004/playground/pkg/domain"
)

// CompileDomainService runs one request through validation, dispatch and
// simulation. Every failure is reported inside the result.
type CompileDomainService struct {
	*domain.Service
	validator *Validator
	registry  *simulator.Registry
}

func NewCompileDomainService(srv *domain.Service, validator *Validator, registry *simulator.Registry) *CompileDomainService {
	return &CompileDomainService{
		Service:   srv,
		validator: validator,
		registry:  registry,
	}
}

// Compile blocks until the result is ready. ExecutionTime covers the whole
// call including rejected requests.
func (s *CompileDomainService) Compile(ctx context.Context, req *aggregate.Request) *aggregate.Result {
	start := time.Now()
	result := s.compile(ctx, req)
	result.ExecutionTime = time.Since(start).Milliseconds()
	
	s.Logger.WithContext(ctx).Debug("[CompileDomainService.Compile]done",
		zap.String("language", req.Language.String()),
		zap.Bool("success", result.Success),
		zap.String("kind", result.Kind.String()),
		zap.Int64("execution_time", result.ExecutionTime),
	)
	return result.Seal()
}

func (s *CompileDomainService) compile(ctx context.Context, req *aggregate.Request) *aggregate.Result {
	if err := s.validator.Validate(req); err != nil {
		return aggregate.FailedResult(err)
	}
	
	sim, err := s.registry.Dispatch(req.Language)
	if err != nil {
		var compileErr *aggregate.CompileError
		if !errors.As(err, &compileErr) {
			compileErr = aggregate.NewCompileError(aggregate.KindUnsupportedLanguage, err.Error())
		}
		return aggregate.FailedResult(compileErr)
	}
	
	return sim.Simulate(ctx, req)
}
