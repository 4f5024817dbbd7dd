package main

import (
	"context"
	"fmt"
	netHttp "net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Tally-lab/Tally-BE/internal/adapter/github"
	"github.com/Tally-lab/Tally-BE/internal/adapter/store"
	"github.com/Tally-lab/Tally-BE/internal/api/grpc"
	"github.com/Tally-lab/Tally-BE/internal/api/http"
	"github.com/Tally-lab/Tally-BE/internal/api/http/limiter"
	"github.com/Tally-lab/Tally-BE/internal/app"
	"github.com/Tally-lab/Tally-BE/internal/database"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:          "tally",
		Short:        "Measures a user's contribution to github repositories",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional file with environment variables")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Runs http and grpc apis",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(cmd.Context(), envFile, func(ctx context.Context, a *application) error {
					mux := http.NewMux(
						a.service,
						a.conf.ServiceResponseTimeout,
						promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}),
						a.l.WithField("component", "mux"),
					)
					server := http.NewServer(
						a.conf.HTTPServerAddress,
						a.conf.HTTPProfileServerAddress,
						mux,
						a.l.WithField("component", "httpServer"),
					)

					g, ctx := errgroup.WithContext(ctx)
					g.Go(func() error {
						return server.Run(ctx)
					})
					if a.conf.GRPCServerAddress != "" {
						grpcServer := grpc.NewServer(
							grpc.NewService(a.service),
							a.conf.GRPCServerAddress,
							a.l.WithField("component", "grpcServer"),
						)
						g.Go(func() error {
							return grpcServer.Run(ctx)
						})
					}

					return g.Wait()
				})
			},
		},
		&cobra.Command{
			Use:   "repo OWNER/NAME USER",
			Short: "Prints user's contribution stats for a repository",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				owner, name, ok := strings.Cut(args[0], "/")
				if !ok {
					return fmt.Errorf("invalid repository %q, expected OWNER/NAME", args[0])
				}

				return withApp(cmd.Context(), envFile, func(ctx context.Context, a *application) error {
					stats, err := a.service.AnalyzeRepository(ctx, owner, name, args[1])
					if err != nil {
						return err
					}

					return printJSON(cmd, stats)
				})
			},
		},
		&cobra.Command{
			Use:   "org ORG USER",
			Short: "Prints user's contribution stats for an organization",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd.Context(), envFile, func(ctx context.Context, a *application) error {
					stats, err := a.service.OrganizationStats(ctx, args[0], args[1])
					if err != nil {
						return err
					}

					return printJSON(cmd, stats)
				})
			},
		},
	)

	return root
}

type application struct {
	conf     Config
	l        *logrus.Logger
	registry *prometheus.Registry
	service  *app.Service
}

// withApp wires all components, runs f and releases the store.
func withApp(ctx context.Context, envFile string, f func(context.Context, *application) error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	l, err := newLogger(conf)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	metrics, err := github.NewMetrics(registry)
	if err != nil {
		return fmt.Errorf("couldn't register github metrics: %w", err)
	}

	githubClient, err := github.NewClient(
		newHTTPClient(conf),
		conf.GithubAPIAddress,
		conf.GithubMaxRetries,
		conf.GithubRetryBackoff,
		metrics,
	)
	if err != nil {
		return fmt.Errorf("couldn't create github client: %w", err)
	}
	githubCachedClient, err := github.NewCachedClient(
		githubClient,
		conf.GithubClientCacheSize,
		conf.GithubClientCacheTTL,
	)
	if err != nil {
		return fmt.Errorf("couldn't create github client cache: %w", err)
	}

	kvStore, err := newKVStore(conf)
	if err != nil {
		return err
	}
	defer func() {
		if err := kvStore.Close(); err != nil {
			l.Errorf("closing store: %v", err)
		}
	}()

	service := app.NewService(
		githubCachedClient,
		store.NewStatsStore(kvStore),
		app.Options{
			Workers:      conf.Workers,
			BranchLimit:  conf.BranchLimit,
			DetailLimit:  conf.DetailLimit,
			MessageLimit: conf.MessageLimit,
		},
		conf.ServiceResponseTimeout,
		l.WithField("component", "service"),
	)

	return f(ctx, &application{
		conf:     conf,
		l:        l,
		registry: registry,
		service:  service,
	})
}

// newHTTPClient returns rate limited client, authenticated when token is configured.
func newHTTPClient(conf Config) *netHttp.Client {
	transport := limiter.NewTransport(netHttp.DefaultTransport, conf.GithubAPIRateLimit)
	if conf.GithubAPIToken != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: conf.GithubAPIToken}),
			Base:   transport,
		}
	}

	return &netHttp.Client{Transport: transport}
}

type closableKVStore interface {
	store.KVStore
	Close() error
}

func newKVStore(conf Config) (closableKVStore, error) {
	switch conf.StoreDriver {
	case storeDriverSQLite:
		s, err := database.NewSQLiteKVStore(conf.StorePath, conf.StoreBucket)
		if err != nil {
			return nil, fmt.Errorf("couldn't create sqlite kv store: %w", err)
		}
		return s, nil
	default:
		s, err := database.NewBoltKVStore(conf.StorePath, conf.StoreBucket)
		if err != nil {
			return nil, fmt.Errorf("couldn't create bolt kv store: %w", err)
		}
		return s, nil
	}
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
