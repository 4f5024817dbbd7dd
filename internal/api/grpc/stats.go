package grpc

import (
	"context"

	"github.com/Tally-lab/Tally-BE/internal/app"
	"google.golang.org/grpc"
)

const (
	serviceName = "tally.Stats"

	analyzeRepositoryMethod = "/" + serviceName + "/AnalyzeRepository"
	organizationStatsMethod = "/" + serviceName + "/OrganizationStats"
)

// StatsServer is the server API for tally.Stats service.
type StatsServer interface {
	AnalyzeRepository(ctx context.Context, r *RepositoryRequest) (*app.ContributionStats, error)
	OrganizationStats(ctx context.Context, r *OrganizationRequest) (*app.OrganizationStats, error)
}

// RegisterStatsServer registers srv in s.
func RegisterStatsServer(s grpc.ServiceRegistrar, srv StatsServer) {
	s.RegisterService(&statsServiceDesc, srv)
}

var statsServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*StatsServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AnalyzeRepository",
			Handler:    analyzeRepositoryHandler,
		},
		{
			MethodName: "OrganizationStats",
			Handler:    organizationStatsHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tally/stats",
}

func analyzeRepositoryHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(RepositoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatsServer).AnalyzeRepository(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: analyzeRepositoryMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatsServer).AnalyzeRepository(ctx, req.(*RepositoryRequest))
	}

	return interceptor(ctx, in, info, handler)
}

func organizationStatsHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(OrganizationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatsServer).OrganizationStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: organizationStatsMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatsServer).OrganizationStats(ctx, req.(*OrganizationRequest))
	}

	return interceptor(ctx, in, info, handler)
}

// StatsClient calls tally.Stats service.
type StatsClient struct {
	cc grpc.ClientConnInterface
}

// NewStatsClient creates new StatsClient instance.
func NewStatsClient(cc grpc.ClientConnInterface) *StatsClient {
	return &StatsClient{cc: cc}
}

// AnalyzeRepository returns user's contribution stats for a repository.
func (c *StatsClient) AnalyzeRepository(
	ctx context.Context,
	r *RepositoryRequest,
	opts ...grpc.CallOption,
) (*app.ContributionStats, error) {
	out := new(app.ContributionStats)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := c.cc.Invoke(ctx, analyzeRepositoryMethod, r, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// OrganizationStats returns user's contribution stats for an organization.
func (c *StatsClient) OrganizationStats(
	ctx context.Context,
	r *OrganizationRequest,
	opts ...grpc.CallOption,
) (*app.OrganizationStats, error) {
	out := new(app.OrganizationStats)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := c.cc.Invoke(ctx, organizationStatsMethod, r, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}
