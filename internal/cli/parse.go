package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weiawesome/wes-io-live/quickid/internal/client"
	"github.com/weiawesome/wes-io-live/quickid/internal/service"
	pkglog "github.com/weiawesome/wes-io-live/quickid/pkg/log"
)

func newParseCmd(load configLoader) *cobra.Command {
	var scheme, addr string

	cmd := &cobra.Command{
		Use:   "parse <id>",
		Short: "Decode an ID and print its fields as JSON",
		Example: `  quickid parse 01ARZ3NDEKTSV4RRFFQ69G5FAV --scheme ulid
  quickid parse log_3f2a9c01d4e5b6a7 --addr localhost:50054`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				res *service.ParseResult
				err error
			)
			if addr != "" {
				res, err = parseRemote(cmd, addr, scheme, args[0])
			} else {
				res, err = parseLocal(cmd, load, scheme, args[0])
			}
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&scheme, "scheme", "", "ID scheme (default quick)")
	cmd.Flags().StringVar(&addr, "addr", "", "Parse through a remote gRPC server at this address")
	return cmd
}

func parseLocal(cmd *cobra.Command, load configLoader, scheme, id string) (*service.ParseResult, error) {
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
	return svc.Parse(pkglog.WithLogger(cmd.Context(), logger), scheme, id)
}

func parseRemote(cmd *cobra.Command, addr, scheme, id string) (*service.ParseResult, error) {
	c, err := client.NewIDClient(addr)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	return c.ParseID(cmd.Context(), scheme, id)
}
