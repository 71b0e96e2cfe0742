package health

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/hookr/internal/handler/management"
	"github.com/dadrus/hookr/internal/x/stringx"
)

const (
	endpointFlag = "endpoint"
	outputFlag   = "output"

	requestTimeout = 5 * time.Second
)

var (
	ErrUnhealthy               = errors.New("unhealthy")
	ErrUnsupportedOutputFormat = errors.New("unsupported output format")
)

func NewHealthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "health",
		Short:   "Checks the health status of a hookr deployment",
		Example: "hookr health -e http://hookr.local:4470",
		Args:    cobra.NoArgs,
		RunE:    runHealth,
	}

	cmd.Flags().StringP(endpointFlag, "e", "http://127.0.0.1:4470",
		"The base URL of hookr's management api.")
	cmd.Flags().StringP(outputFlag, "o", "text", `The format for the result output.
Can be "json", "text", or "yaml".`)

	return cmd
}

func runHealth(cmd *cobra.Command, _ []string) error {
	endpointURL, _ := cmd.Flags().GetString(endpointFlag)
	outputFormat, _ := cmd.Flags().GetString(outputFlag)

	switch outputFormat {
	case "json", "yaml", "text":
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedOutputFormat, outputFormat)
	}

	client := &http.Client{Timeout: requestTimeout}

	resp, err := client.Get(endpointURL + management.EndpointHealth) //nolint:noctx
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected HTTP status code: %s", ErrUnhealthy, resp.Status)
	}

	rawResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var structuredResponse map[string]any
	if err = json.Unmarshal(rawResp, &structuredResponse); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	out := cmd.OutOrStdout()

	switch outputFormat {
	case "json":
		fmt.Fprintln(out, stringx.ToString(rawResp))
	case "yaml":
		rawYaml, err := yaml.Marshal(structuredResponse)
		if err != nil {
			return fmt.Errorf("failed to convert response to yaml: %w", err)
		}

		fmt.Fprint(out, stringx.ToString(rawYaml))
	case "text":
		fmt.Fprintln(out, structuredResponse["status"])
	}

	return nil
}
