package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Tally-lab/Tally-BE/internal/api/http/mock"
	"github.com/Tally-lab/Tally-BE/internal/app"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMux(t *testing.T) {
	t.Parallel()

	serviceDelay := time.Millisecond

	tests := []struct {
		name           string
		method         string
		path           string
		muxTimeout     time.Duration
		setupMock      func(*mock.MockService)
		wantStatusCode int
	}{
		{
			name:       "valid repository contributions request",
			method:     http.MethodGet,
			path:       "/repos/acme/api/contributions/bob",
			muxTimeout: time.Second,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					AnalyzeRepository(gomock.Any(), "acme", "api", "bob").
					Return(&app.ContributionStats{}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:       "service exceeding handler timeout",
			method:     http.MethodGet,
			path:       "/repos/acme/api/contributions/bob",
			muxTimeout: time.Microsecond,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					AnalyzeRepository(gomock.Any(), "acme", "api", "bob").
					DoAndReturn(func(ctx context.Context, owner string, name string, user string) (*app.ContributionStats, error) {
						time.Sleep(serviceDelay)
						return nil, ctx.Err()
					})
			},
			wantStatusCode: http.StatusGatewayTimeout,
		},
		{
			name:       "valid organization stats request",
			method:     http.MethodGet,
			path:       "/orgs/acme/stats/bob",
			muxTimeout: time.Second,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					OrganizationStats(gomock.Any(), "acme", "bob").
					Return(&app.OrganizationStats{}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:       "stored stats request",
			method:     http.MethodGet,
			path:       "/stats/cs1",
			muxTimeout: time.Second,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					ContributionStats(gomock.Any(), "cs1").
					Return(nil, app.NotFoundError("not found"))
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:       "delete stored stats request",
			method:     http.MethodDelete,
			path:       "/stats/cs1",
			muxTimeout: time.Second,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().DeleteContributionStats(gomock.Any(), "cs1").Return(nil)
			},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name:       "stored organization stats request",
			method:     http.MethodGet,
			path:       "/orgstats/os1",
			muxTimeout: time.Second,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					StoredOrganizationStats(gomock.Any(), "os1").
					Return(&app.OrganizationStats{ID: "os1"}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:       "organization repositories request",
			method:     http.MethodGet,
			path:       "/orgs/acme/repos",
			muxTimeout: time.Second,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					OrganizationRepositories(gomock.Any(), "acme").
					Return([]app.Repository{{Name: "api"}}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:       "user repositories request",
			method:     http.MethodGet,
			path:       "/user/repos",
			muxTimeout: time.Second,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().UserRepositories(gomock.Any()).Return([]app.Repository{}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "metrics",
			method:         http.MethodGet,
			path:           "/metrics",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusTeapot,
		},
		{
			name:           "invalid method",
			method:         http.MethodPost,
			path:           "/user/repos",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusMethodNotAllowed,
		},
		{
			name:           "invalid path",
			method:         http.MethodGet,
			path:           "/invalid_path",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusNotFound,
		},
	}

	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mock.NewMockService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(service)
			}

			l := logrus.New()
			mux := NewMux(service, tt.muxTimeout, metrics, l)

			server := httptest.NewServer(mux)
			defer server.Close()

			req, err := http.NewRequest(tt.method, server.URL+tt.path, nil)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)
		})
	}
}
