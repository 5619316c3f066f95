package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/weiawesome/wes-io-live/quickid/internal/idgen"
)

func newCheckCmd() *cobra.Command {
	var numeric bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Report duplicate values, one value per line",
		Long: `Reads one value per line from file, or stdin when no file is given,
and prints the duplicate report as JSON. Blank lines are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
			}

			values, err := readValues(in, numeric)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(idgen.FindDuplicates(values), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&numeric, "numeric", false, "Parse every line as a numeric ID")
	return cmd
}

func readValues(r io.Reader, numeric bool) ([]idgen.ID, error) {
	var values []idgen.ID

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if !numeric {
			values = append(values, idgen.Text(text))
			continue
		}
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q is not a numeric ID", line, text)
		}
		values = append(values, idgen.Number(n))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read values: %w", err)
	}
	return values, nil
}
