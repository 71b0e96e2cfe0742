package match

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/hookr/cmd/validate"
	"github.com/dadrus/hookr/internal/x/stringx"
)

const outputFlag = "output"

var ErrUnsupportedOutputFormat = errors.New("unsupported output format")

type result struct {
	Topic   string   `json:"topic"   yaml:"topic"`
	Matches []string `json:"matches" yaml:"matches"`
}

func NewMatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <topic>...",
		Short: "Lists the subscriptions the given topics would be routed to",
		Long: "Lists the subscriptions the given topics would be routed to. The subscriptions are taken\n" +
			"from the configuration and the subscription files it references. A running hookr\n" +
			"instance is not required.",
		Example: "hookr match -c config.yaml user.created order.placed",
		Args:    cobra.MinimumNArgs(1),
		RunE:    runMatch,
	}

	cmd.Flags().StringP(outputFlag, "o", "text", `The format for the result output.
Can be "json", "text", or "yaml".`)

	return cmd
}

func runMatch(cmd *cobra.Command, topics []string) error {
	format, _ := cmd.Flags().GetString(outputFlag)
	if !slices.Contains([]string{"text", "json", "yaml"}, format) {
		return fmt.Errorf("%w: %s", ErrUnsupportedOutputFormat, format)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	reg, err := validate.LoadRegistry(ctx, cmd)
	if err != nil {
		return err
	}

	results := make([]result, len(topics))

	for i, topic := range topics {
		matches := reg.Route(ctx, topic)
		slices.Sort(matches)

		results[i] = result{Topic: topic, Matches: matches}
		if results[i].Matches == nil {
			results[i].Matches = []string{}
		}
	}

	out := cmd.OutOrStdout()

	switch format {
	case "json":
		raw, err := json.Marshal(results)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, stringx.ToString(raw))
	case "yaml":
		raw, err := yaml.Marshal(results)
		if err != nil {
			return err
		}

		fmt.Fprint(out, stringx.ToString(raw))
	default:
		for _, res := range results {
			fmt.Fprintf(out, "%s: %s\n", res.Topic, strings.Join(res.Matches, ", "))
		}
	}

	return nil
}
