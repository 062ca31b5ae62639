package cli

import (
	"errors"
	"fmt"
	"route-resolver-service/internal/domain"

	"github.com/spf13/cobra"
)

var (
	reservaNombre string
	reservaRuta   int64
)

var reservasCmd = &cobra.Command{
	Use:   "reservas",
	Short: "Manage reservations on stored routes",
}

var reservasCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Reserve a seat on a route",
	Args:  cobra.NoArgs,
	RunE:  runReservasCreate,
}

var reservasListCmd = &cobra.Command{
	Use:   "list [ruta-id]",
	Short: "List the reservations of a route",
	Args:  cobra.ExactArgs(1),
	RunE:  runReservasList,
}

func init() {
	reservasCreateCmd.Flags().StringVar(&reservaNombre, "nombre", "", "passenger name")
	reservasCreateCmd.Flags().Int64Var(&reservaRuta, "ruta", 0, "route id")

	reservasCmd.AddCommand(reservasCreateCmd, reservasListCmd)
	rootCmd.AddCommand(reservasCmd)
}

func runReservasCreate(cmd *cobra.Command, _ []string) error {
	if catalog == nil {
		return errors.New("catalog not configured")
	}

	r, err := catalog.CreateReserva(cmd.Context(), domain.Reserva{
		Nombre: reservaNombre,
		Ruta:   domain.RutaRef{ID: reservaRuta},
	})
	if err != nil {
		return fmt.Errorf("create reserva failed: %w", err)
	}

	cmd.Printf("Reserved [%d] %s on route %d\n", r.ID, r.Nombre, r.Ruta.ID)
	return nil
}

func runReservasList(cmd *cobra.Command, args []string) error {
	if catalog == nil {
		return errors.New("catalog not configured")
	}

	rutaID, err := parseID(args[0])
	if err != nil {
		return err
	}

	reservas, err := catalog.ListReservasByRuta(cmd.Context(), rutaID)
	if err != nil {
		return fmt.Errorf("list reservas failed: %w", err)
	}

	if len(reservas) == 0 {
		cmd.Println("No reservations for this route.")
		return nil
	}
	for _, r := range reservas {
		cmd.Printf("  [%d] %s\n", r.ID, r.Nombre)
	}
	return nil
}
