package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/Tally-lab/Tally-BE/internal/app"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// NewContributionStatsHandler creates handlerfunc analyzing user's contribution to a repository.
func NewContributionStatsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.AnalyzeRepository(
			r.Context(),
			r.PathValue("owner"),
			r.PathValue("repo"),
			r.PathValue("user"),
		)
		if err != nil {
			writeError(w, r, err, l)
			return
		}

		writeJSON(w, stats)
	}
}

// NewOrganizationStatsHandler creates handlerfunc analyzing user's contribution to an organization.
func NewOrganizationStatsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.OrganizationStats(r.Context(), r.PathValue("org"), r.PathValue("user"))
		if err != nil {
			writeError(w, r, err, l)
			return
		}

		writeJSON(w, stats)
	}
}

// NewStoredContributionStatsHandler creates handlerfunc returning previously computed repository stats.
func NewStoredContributionStatsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.ContributionStats(r.Context(), r.PathValue("id"))
		if err != nil {
			writeError(w, r, err, l)
			return
		}

		writeJSON(w, stats)
	}
}

// NewDeleteContributionStatsHandler creates handlerfunc removing previously computed repository stats.
func NewDeleteContributionStatsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteContributionStats(r.Context(), r.PathValue("id")); err != nil {
			writeError(w, r, err, l)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewStoredOrganizationStatsHandler creates handlerfunc returning previously computed organization stats.
func NewStoredOrganizationStatsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.StoredOrganizationStats(r.Context(), r.PathValue("id"))
		if err != nil {
			writeError(w, r, err, l)
			return
		}

		writeJSON(w, stats)
	}
}

// NewOrganizationRepositoriesHandler creates handlerfunc returning repositories of an organization.
func NewOrganizationRepositoriesHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repos, err := service.OrganizationRepositories(r.Context(), r.PathValue("org"))
		if err != nil {
			writeError(w, r, err, l)
			return
		}

		writeJSON(w, repos)
	}
}

// NewUserRepositoriesHandler creates handlerfunc returning repositories of the authenticated user.
func NewUserRepositoriesHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repos, err := service.UserRepositories(r.Context())
		if err != nil {
			writeError(w, r, err, l)
			return
		}

		writeJSON(w, repos)
	}
}

// NewUserOrganizationsHandler creates handlerfunc returning organizations of the authenticated user.
func NewUserOrganizationsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orgs, err := service.UserOrganizations(r.Context())
		if err != nil {
			writeError(w, r, err, l)
			return
		}

		writeJSON(w, orgs)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error, l logrus.FieldLogger) {
	switch {
	case app.IsInvalidRequestError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case app.IsNotFoundError(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case app.IsTooManyRequestsError(err):
		http.Error(w, err.Error(), http.StatusTooManyRequests)
	case errors.Is(err, context.DeadlineExceeded):
		l.WithError(err).WithField("path", r.URL.Path).Warn("request timed out")
		http.Error(w, "", http.StatusGatewayTimeout)
	default:
		l.WithError(err).WithField("path", r.URL.Path).Error("handling request")
		http.Error(w, "", http.StatusInternalServerError)
	}
}
