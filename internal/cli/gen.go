package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weiawesome/wes-io-live/quickid/internal/client"
	idgrpc "github.com/weiawesome/wes-io-live/quickid/internal/grpc"
	"github.com/weiawesome/wes-io-live/quickid/internal/idgen"
	"github.com/weiawesome/wes-io-live/quickid/internal/service"
	pkglog "github.com/weiawesome/wes-io-live/quickid/pkg/log"
)

type genOptions struct {
	scheme string
	typ    string
	prefix string
	length int
	count  int
	addr   string
}

func newGenCmd(load configLoader) *cobra.Command {
	var opts genOptions

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print newly generated IDs, one per line",
		Example: `  quickid gen --prefix log --length 24
  quickid gen --type number --length 12 --count 5
  quickid gen --scheme ulid --addr localhost:50054`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := service.GenerateRequest{
				Scheme: opts.scheme,
				Type:   opts.typ,
				Prefix: opts.prefix,
			}
			if cmd.Flags().Changed("length") {
				req.Length = &opts.length
			}

			var (
				ids []idgen.ID
				err error
			)
			if opts.addr != "" {
				ids, err = genRemote(cmd, opts.addr, req, opts.count)
			} else {
				ids, err = genLocal(cmd, load, req, opts.count)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, id := range ids {
				fmt.Fprintln(out, id.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.scheme, "scheme", "", "ID scheme (default quick)")
	cmd.Flags().StringVar(&opts.typ, "type", "", "Quick ID type: string or number")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Quick ID prefix")
	cmd.Flags().IntVar(&opts.length, "length", 0, "Quick ID length")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "Number of IDs to generate")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "Generate through a remote gRPC server at this address")
	return cmd
}

func genLocal(cmd *cobra.Command, load configLoader, req service.GenerateRequest, count int) ([]idgen.ID, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := pkglog.New(pkglog.Config{
		Level:  "warn",
		Output: cmd.ErrOrStderr(),
	})
	svc, err := buildService(cfg, logger)
	if err != nil {
		return nil, err
	}
	return svc.GenerateBatch(pkglog.WithLogger(cmd.Context(), logger), req, count)
}

func genRemote(cmd *cobra.Command, addr string, req service.GenerateRequest, count int) ([]idgen.ID, error) {
	c, err := client.NewIDClient(addr)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	return c.GenerateBatchIDs(cmd.Context(), &idgrpc.GenerateIDRequest{
		Scheme: req.Scheme,
		Type:   req.Type,
		Prefix: req.Prefix,
		Length: req.Length,
	}, count)
}
