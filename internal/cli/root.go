// Package cli implements the routectl command tree.
package cli

import (
	"context"
	"errors"
	"route-resolver-service/internal/domain"
	"route-resolver-service/internal/ports"

	"github.com/spf13/cobra"
)

// RouteResolver is the resolve operation the CLI drives.
type RouteResolver interface {
	Resolve(ctx context.Context, origin, destination string) (*domain.RouteInfo, error)
}

var (
	routeResolver RouteResolver
	catalog       ports.Catalog
)

var rootCmd = &cobra.Command{
	Use:   "routectl",
	Short: "Resolve travel routes and manage the route catalog",
	Long: `routectl asks the route service how long it takes to travel between two
places, falling back to the secondary deployment when the primary fails.
It also manages the routes and reservations stored in the catalog backend.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetServices injects the dependencies used by the commands. Either may be
// nil; commands that need a missing dependency fail with an error.
func SetServices(resolver RouteResolver, c ports.Catalog) {
	routeResolver = resolver
	catalog = c
}

// Execute runs the command tree against os.Args.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// ErrorMessage returns the text shown to the user for err. Route failures
// show their human message only.
func ErrorMessage(err error) string {
	var re *domain.ResolutionError
	if errors.As(err, &re) {
		return re.Message
	}
	return err.Error()
}
