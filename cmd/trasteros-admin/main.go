// trasteros-admin es la herramienta de administración del almacén de
// documentos: siembra las colecciones, carga los datos de demostración y
// resetea el almacén. Requiere una base de datos configurada (con el almacén
// en memoria no tendría efecto más allá del proceso).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tu-usuario/trasteros-pro/internal/application/seed"
	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
	"github.com/tu-usuario/trasteros-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/trasteros-pro/internal/infrastructure/records"
	"github.com/tu-usuario/trasteros-pro/pkg/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "trasteros-admin",
		Short: "Administración del almacén de documentos de Trasteros Pro",
	}

	rootCmd.AddCommand(
		bootstrapCmd(),
		demoCmd(),
		resetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// abrirAlmacen conecta a PostgreSQL y garantiza el esquema.
func abrirAlmacen(ctx context.Context) (*postgres.RecordStore, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	if !cfg.DB.Configurada() {
		return nil, nil, fmt.Errorf("no hay base de datos configurada (DATABASE_URL o DB_HOST)")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	store := postgres.NewRecordStore(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("esquema del almacén: %w", err)
	}
	return store, pool.Close, nil
}

func bootstrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Siembra las colecciones por defecto (solo las ausentes)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, cerrar, err := abrirAlmacen(ctx)
			if err != nil {
				return err
			}
			defer cerrar()

			if err := seed.Bootstrap(ctx, store); err != nil {
				return fmt.Errorf("bootstrap: %w", err)
			}
			fmt.Println("colecciones por defecto sembradas")
			return nil
		},
	}
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Carga los inquilinos de demostración si no hay ninguno",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, cerrar, err := abrirAlmacen(ctx)
			if err != nil {
				return err
			}
			defer cerrar()

			sembrado, err := seed.Demo(ctx,
				records.NewInquilinoRepository(store),
				records.NewTrasteroRepository(store),
			)
			if err != nil {
				return fmt.Errorf("demo: %w", err)
			}
			if sembrado {
				fmt.Println("datos de demostración sembrados")
			} else {
				fmt.Println("ya hay inquilinos; no se sembró nada")
			}
			return nil
		},
	}
}

func resetCmd() *cobra.Command {
	var confirmar bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Elimina TODAS las colecciones del almacén",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmar {
				return fmt.Errorf("operación destructiva: repite con --si para confirmar")
			}
			ctx := cmd.Context()
			store, cerrar, err := abrirAlmacen(ctx)
			if err != nil {
				return err
			}
			defer cerrar()

			for _, clave := range repository.Claves() {
				if err := store.Remove(ctx, clave); err != nil {
					return fmt.Errorf("borrar %s: %w", clave, err)
				}
			}
			fmt.Println("almacén reseteado")
			return nil
		},
	}
	cmd.Flags().BoolVar(&confirmar, "si", false, "confirma el borrado")
	return cmd
}
