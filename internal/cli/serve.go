package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	idgrpc "github.com/weiawesome/wes-io-live/quickid/internal/grpc"
	"github.com/weiawesome/wes-io-live/quickid/internal/handler"
	pkglog "github.com/weiawesome/wes-io-live/quickid/pkg/log"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and gRPC ID servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			pkglog.Init(pkglog.Config{
				Level:       cfg.Log.Level,
				Pretty:      cfg.Log.Pretty,
				ServiceName: "quickid",
			})
			logger := pkglog.L()
			pkglog.SetRequestIDGenerator(requestIDGenerator())
			logger.Info().Msg("starting quickid")

			svc, err := buildService(cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			gin.SetMode(gin.ReleaseMode)
			r := gin.New()
			r.Use(gin.Recovery(), pkglog.GinMiddleware(logger))
			r.GET("/health", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"status": "ok"})
			})
			handler.NewHandler(svc).RegisterRoutes(r)

			httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
			httpServer := &http.Server{
				Addr:              httpAddr,
				Handler:           r,
				ReadHeaderTimeout: 5 * time.Second,
			}

			grpcAddr := fmt.Sprintf("%s:%d", cfg.GRPC.Host, cfg.GRPC.Port)
			lis, err := idgrpc.Listen(grpcAddr)
			if err != nil {
				return err
			}
			grpcServer := idgrpc.NewServer(svc, logger)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info().Str("addr", httpAddr).Msg("http server listening")
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("http server error: %w", err)
				}
				return nil
			})
			g.Go(func() error {
				logger.Info().Str("addr", grpcAddr).Msg("grpc server listening")
				if err := grpcServer.Serve(lis); err != nil {
					return fmt.Errorf("grpc server error: %w", err)
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				logger.Info().Msg("shutting down quickid")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				grpcServer.GracefulStop()
				return httpServer.Shutdown(shutdownCtx)
			})

			if err := g.Wait(); err != nil {
				return err
			}
			logger.Info().Msg("quickid stopped")
			return nil
		},
	}
}
