package grpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tally-lab/Tally-BE/internal/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppService computes contribution stats.
type AppService interface {
	AnalyzeRepository(ctx context.Context, owner string, name string, user string) (*app.ContributionStats, error)
	OrganizationStats(ctx context.Context, org string, user string) (*app.OrganizationStats, error)
}

// RepositoryRequest asks for user's contribution to a repository.
type RepositoryRequest struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
	User  string `json:"user"`
}

// OrganizationRequest asks for user's contribution to an organization.
type OrganizationRequest struct {
	Organization string `json:"organization"`
	User         string `json:"user"`
}

// Service implements StatsServer, acting as a direct proxy to AppService.
type Service struct {
	appService AppService
}

var _ StatsServer = &Service{}

// NewService returns new Service instance
func NewService(appService AppService) *Service {
	return &Service{
		appService: appService,
	}
}

// AnalyzeRepository calls service and returns its stats.
func (s *Service) AnalyzeRepository(ctx context.Context, r *RepositoryRequest) (*app.ContributionStats, error) {
	stats, err := s.appService.AnalyzeRepository(ctx, r.Owner, r.Name, r.User)
	if err != nil {
		return nil, toStatus(fmt.Errorf("analyzing repository: %w", err))
	}

	return stats, nil
}

// OrganizationStats calls service and returns its stats.
func (s *Service) OrganizationStats(ctx context.Context, r *OrganizationRequest) (*app.OrganizationStats, error) {
	stats, err := s.appService.OrganizationStats(ctx, r.Organization, r.User)
	if err != nil {
		return nil, toStatus(fmt.Errorf("analyzing organization: %w", err))
	}

	return stats, nil
}

// toStatus maps app errors to grpc status codes.
func toStatus(err error) error {
	code := codes.Internal
	switch {
	case app.IsInvalidRequestError(err):
		code = codes.InvalidArgument
	case app.IsNotFoundError(err):
		code = codes.NotFound
	case app.IsTooManyRequestsError(err):
		code = codes.ResourceExhausted
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	}

	return status.Error(code, err.Error())
}
