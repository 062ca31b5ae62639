package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"route-resolver-service/internal/domain"

	"github.com/spf13/cobra"
)

var (
	resolveRaw  bool
	resolveJSON bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [origin] [destination]",
	Short: "Resolve the travel duration between two places",
	Long: `Queries the route service for a route between origin and destination.
The primary endpoint is tried first and the secondary one only when it fails.
Prints the travel duration and, when available, a Google Maps directions link.`,
	Args: cobra.ExactArgs(2),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveRaw, "raw", false, "also print the raw upstream response")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(resolveCmd)
}

type resolveOutput struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Duration    string  `json:"duration"`
	MapLink     *string `json:"map_link"`
	Endpoint    string  `json:"endpoint"`
	RawResponse string  `json:"raw_response,omitempty"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	if routeResolver == nil {
		return errors.New("route resolver not configured")
	}

	info, err := routeResolver.Resolve(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	if resolveJSON {
		return outputResolveJSON(cmd, info)
	}
	outputResolveText(cmd, info)
	return nil
}

func outputResolveJSON(cmd *cobra.Command, info *domain.RouteInfo) error {
	out := resolveOutput{
		Origin:      info.Origin,
		Destination: info.Destination,
		Duration:    info.Fields.DurationText,
		MapLink:     info.Fields.MapLink,
		Endpoint:    info.Endpoint,
	}
	if resolveRaw {
		out.RawResponse = info.RawPayload
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResolveText(cmd *cobra.Command, info *domain.RouteInfo) {
	cmd.Printf("%s → %s\n", info.Origin, info.Destination)
	cmd.Printf("  Duración: %s\n", info.Fields.DurationText)
	if link := info.Fields.Link(); link != "" {
		cmd.Printf("  Mapa:     %s\n", link)
	}
	if resolveRaw {
		cmd.Println()
		cmd.Println(info.RawPayload)
	}
}
