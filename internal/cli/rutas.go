package cli

import (
	"errors"
	"fmt"
	"route-resolver-service/internal/domain"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	rutaOrigen      string
	rutaDestino     string
	rutaDescripcion string
)

var rutasCmd = &cobra.Command{
	Use:   "rutas",
	Short: "Manage stored routes",
}

var rutasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored routes",
	Args:  cobra.NoArgs,
	RunE:  runRutasList,
}

var rutasCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a route",
	Args:  cobra.NoArgs,
	RunE:  runRutasCreate,
}

var rutasUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Replace a stored route",
	Args:  cobra.ExactArgs(1),
	RunE:  runRutasUpdate,
}

var rutasDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a stored route",
	Args:  cobra.ExactArgs(1),
	RunE:  runRutasDelete,
}

func init() {
	for _, c := range []*cobra.Command{rutasCreateCmd, rutasUpdateCmd} {
		c.Flags().StringVar(&rutaOrigen, "origen", "", "route origin")
		c.Flags().StringVar(&rutaDestino, "destino", "", "route destination")
		c.Flags().StringVar(&rutaDescripcion, "descripcion", "", "route description")
	}

	rutasCmd.AddCommand(rutasListCmd, rutasCreateCmd, rutasUpdateCmd, rutasDeleteCmd)
	rootCmd.AddCommand(rutasCmd)
}

func runRutasList(cmd *cobra.Command, _ []string) error {
	if catalog == nil {
		return errors.New("catalog not configured")
	}

	rutas, err := catalog.ListRutas(cmd.Context())
	if err != nil {
		return fmt.Errorf("list rutas failed: %w", err)
	}

	if len(rutas) == 0 {
		cmd.Println("No routes found.")
		return nil
	}
	for _, r := range rutas {
		printRuta(cmd, r)
	}
	return nil
}

func runRutasCreate(cmd *cobra.Command, _ []string) error {
	if catalog == nil {
		return errors.New("catalog not configured")
	}

	r, err := catalog.CreateRuta(cmd.Context(), rutaFromFlags())
	if err != nil {
		return fmt.Errorf("create ruta failed: %w", err)
	}

	cmd.Println("Created:")
	printRuta(cmd, r)
	return nil
}

func runRutasUpdate(cmd *cobra.Command, args []string) error {
	if catalog == nil {
		return errors.New("catalog not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	r, err := catalog.UpdateRuta(cmd.Context(), id, rutaFromFlags())
	if err != nil {
		return fmt.Errorf("update ruta failed: %w", err)
	}

	cmd.Println("Updated:")
	printRuta(cmd, r)
	return nil
}

func runRutasDelete(cmd *cobra.Command, args []string) error {
	if catalog == nil {
		return errors.New("catalog not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := catalog.DeleteRuta(cmd.Context(), id); err != nil {
		return fmt.Errorf("delete ruta failed: %w", err)
	}

	cmd.Printf("Deleted route %d\n", id)
	return nil
}

func rutaFromFlags() domain.Ruta {
	return domain.Ruta{
		Origen:      rutaOrigen,
		Destino:     rutaDestino,
		Descripcion: rutaDescripcion,
	}
}

func printRuta(cmd *cobra.Command, r domain.Ruta) {
	cmd.Printf("  [%d] %s → %s\n", r.ID, r.Origen, r.Destino)
	if r.Descripcion != "" {
		cmd.Printf("      %s\n", r.Descripcion)
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", raw)
	}
	return id, nil
}
