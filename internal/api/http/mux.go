package http

import (
	"context"
	"net/http"
	"time"

	"github.com/Tally-lab/Tally-BE/internal/app"
	"github.com/sirupsen/logrus"
)

// Service computes and returns contribution stats.
//
//go:generate mockgen -destination mock/service.go -package mock github.com/Tally-lab/Tally-BE/internal/api/http Service
type Service interface {
	AnalyzeRepository(ctx context.Context, owner string, name string, user string) (*app.ContributionStats, error)
	OrganizationStats(ctx context.Context, org string, user string) (*app.OrganizationStats, error)
	ContributionStats(ctx context.Context, id string) (*app.ContributionStats, error)
	DeleteContributionStats(ctx context.Context, id string) error
	StoredOrganizationStats(ctx context.Context, id string) (*app.OrganizationStats, error)
	OrganizationRepositories(ctx context.Context, org string) ([]app.Repository, error)
	UserRepositories(ctx context.Context) ([]app.Repository, error)
	UserOrganizations(ctx context.Context) ([]app.Organization, error)
}

// NewMux creates router for app's http server.
// metricsHandler is optional, /metrics isn't served without it.
func NewMux(service Service, timeout time.Duration, metricsHandler http.Handler, l logrus.FieldLogger) *http.ServeMux {
	mws := []Middleware{
		NewLoggingMiddleware(l),
		NewTimeoutMiddleware(timeout),
	}
	handle := func(h http.HandlerFunc) http.HandlerFunc {
		return chain(h, mws...)
	}

	m := http.NewServeMux()
	m.HandleFunc(
		"GET /repos/{owner}/{repo}/contributions/{user}",
		handle(NewContributionStatsHandler(service, l)),
	)
	m.HandleFunc(
		"GET /orgs/{org}/stats/{user}",
		handle(NewOrganizationStatsHandler(service, l)),
	)
	m.HandleFunc("GET /orgs/{org}/repos", handle(NewOrganizationRepositoriesHandler(service, l)))
	m.HandleFunc("GET /stats/{id}", handle(NewStoredContributionStatsHandler(service, l)))
	m.HandleFunc("DELETE /stats/{id}", handle(NewDeleteContributionStatsHandler(service, l)))
	m.HandleFunc("GET /orgstats/{id}", handle(NewStoredOrganizationStatsHandler(service, l)))
	m.HandleFunc("GET /user/repos", handle(NewUserRepositoriesHandler(service, l)))
	m.HandleFunc("GET /user/orgs", handle(NewUserOrganizationsHandler(service, l)))
	if metricsHandler != nil {
		m.Handle("GET /metrics", metricsHandler)
	}

	return m
}
