// Command exportar writes the h-index ranking and per-author publication
// listings to CSV files, with the same contents and names as the web export.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kelydev/explorador/config"
	"github.com/kelydev/explorador/database"
	"github.com/kelydev/explorador/metrics"
	"github.com/kelydev/explorador/repository"
	"github.com/kelydev/explorador/shaper"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     repository.Querier
	dir    string
}

func rootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "exportar",
		Short:         "Export explorer listings as CSV",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := config.NewLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			a.db = database.NewClient(cfg.SparqlEndpoint, cfg.SparqlTimeout, cfg.SparqlMaxGetLength, logger, metrics.NewNop())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.dir, "dir", ".", "directory the CSV file is written to")

	root.AddCommand(indiceHCmd(a), publicacionesCmd(a))
	return root
}

func indiceHCmd(a *app) *cobra.Command {
	var nombre string
	var minH, maxH int
	cmd := &cobra.Command{
		Use:   "indice-h",
		Short: "Export the h-index ranking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var lo, hi *int
			if cmd.Flags().Changed("min") {
				lo = &minH
			}
			if cmd.Flags().Changed("max") {
				hi = &maxH
			}
			filtro := shaper.NewFiltroIndiceH(nombre, lo, hi)

			rows, err := repository.LoadIndicesH(cmd.Context(), a.db, a.cfg.Centro)
			if err != nil {
				return err
			}
			return a.write(cmd, filtro.NombreArchivo(), shaper.CSVIndiceH(filtro.Aplicar(rows)))
		},
	}
	cmd.Flags().StringVar(&nombre, "nombre", "", "filter by investigator name")
	cmd.Flags().IntVar(&minH, "min", 0, "minimum h-index")
	cmd.Flags().IntVar(&maxH, "max", 0, "maximum h-index")
	return cmd
}

func publicacionesCmd(a *app) *cobra.Command {
	var autor string
	var anios int
	cmd := &cobra.Command{
		Use:   "publicaciones",
		Short: "Export the publications of an author grouped by year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grupos, err := repository.LoadPublicacionesAutor(cmd.Context(), a.db, a.cfg.Centro, autor)
			if err != nil {
				return err
			}
			grupos = shaper.FiltrarPorAnios(grupos, anios, time.Now())
			return a.write(cmd, shaper.NombreArchivoPublicaciones(autor, anios), shaper.CSVPublicaciones(grupos))
		},
	}
	cmd.Flags().StringVar(&autor, "autor", "", "author name as stored in the graph")
	cmd.Flags().IntVar(&anios, "anios", 0, "0 all, 1 current year, -1 last year, n last n years")
	_ = cmd.MarkFlagRequired("autor")
	return cmd
}

// write stores data under dir/name. An empty export writes nothing.
func (a *app) write(cmd *cobra.Command, name string, data []byte) error {
	if data == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "No hay datos para exportar.")
		return nil
	}
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	path := filepath.Join(a.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	a.logger.Info("export written", zap.String("file", path), zap.Int("bytes", len(data)))
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
