package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/ambulance_dispatch_system/internal/app"
	"github.com/shenikar/ambulance_dispatch_system/internal/config"
	v1 "github.com/shenikar/ambulance_dispatch_system/internal/handler/http/v1"
	"github.com/shenikar/ambulance_dispatch_system/internal/ledger"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// cli - общее состояние команд
type cli struct {
	cfg      *config.Config
	log      *logrus.Logger
	validate *validator.Validate
}

func newRootCmd() *cobra.Command {
	c := &cli{validate: validator.New()}

	rootCmd := &cobra.Command{
		Use:           "dispatchctl",
		Short:         "Ambulance dispatch command line tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.log = logger.New(cfg.LogLevel)
			// stdout занят результатом
			c.log.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}

	rootCmd.AddCommand(c.dispatchCmd())
	rootCmd.AddCommand(c.registerHospitalCmd())
	rootCmd.AddCommand(c.registerAmbulanceCmd())
	rootCmd.AddCommand(c.nearestCmd())
	rootCmd.AddCommand(c.ledgerCmd())
	rootCmd.AddCommand(c.migrateCmd())
	return rootCmd
}

// dispatcher собирает компоненты на время одной команды; вызывающий закрывает App
func (c *cli) dispatcher(ctx context.Context) (*app.App, error) {
	return app.Build(ctx, c.cfg, c.log)
}

// decodeInput читает JSON по правилам resolveInput и проверяет DTO
func (c *cli) decodeInput(cmd *cobra.Command, args []string, dst any) error {
	data, err := resolveInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	if err := c.validate.Struct(dst); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	return nil
}

// fail печатает ошибку в stdout как JSON и возвращает её для кода выхода
func fail(out io.Writer, err error) error {
	resp := v1.ErrorResponse{Error: err.Error()}
	switch {
	case errors.Is(err, models.ErrNoHospitalsFound):
		resp.Code = "NO_HOSPITALS_FOUND"
	case errors.Is(err, models.ErrNoAvailableAmbulance):
		resp.Code = "NO_AVAILABLE_AMBULANCE"
	}
	_ = writeJSON(out, resp)
	return err
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) dispatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch [json|file]",
		Short: "Dispatch the nearest available ambulance to an emergency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input v1.DispatchRequest
			if err := c.decodeInput(cmd, args, &input); err != nil {
				return fail(cmd.OutOrStdout(), err)
			}
			a, err := c.dispatcher(cmd.Context())
			if err != nil {
				return fail(cmd.OutOrStdout(), err)
			}
			defer a.Close()
			response, err := a.Service.Dispatch(cmd.Context(), v1.DTOToEmergencyRequest(input))
			if err != nil {
				return fail(cmd.OutOrStdout(), err)
			}
			return writeJSON(cmd.OutOrStdout(), response)
		},
	}
}

func (c *cli) registerHospitalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register-hospital [json|file]",
		Short: "Anchor and store a hospital",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input v1.RegisterHospitalRequest
			if err := c.decodeInput(cmd, args, &input); err != nil {
				return fail(cmd.OutOrStdout(), err)
			}
			a, err := c.dispatcher(cmd.Context())
			if err != nil {
				return fail(cmd.OutOrStdout(), err)
			}
			defer a.Close()
			hospital := v1.DTOToHospital(input)
			blockID, err := a.Service.RegisterHospital(cmd.Context(), hospital)
			if err != nil {
				return fail(cmd.OutOrStdout(), err)
			}
			return writeJSON(cmd.OutOrStdout(), v1.RegistrationResponse{ID: hospital.HospitalID, BlockID: blockID})
		},
	}
}

func (c *cli) registerAmbulanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register-ambulance [json|file]",
		Short: "Anchor and store an ambulance",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input v1.RegisterAmbulanceRequest
			if err := c.decodeInput(cmd, args, &input); err != nil {
				return fail(cmd.OutOrStdout(), err)
			}
			a, err := c.dispatcher(cmd.Context())
			if err != nil {
				return fail(cmd.OutOrStdout(), err)
			}
			defer a.Close()
			ambulance := v1.DTOToAmbulance(input)
			blockID, err := a.Service.RegisterAmbulance(cmd.Context(), ambulance)
			if err != nil {
				return fail(cmd.OutOrStdout(), err)
			}
			return writeJSON(cmd.OutOrStdout(), v1.RegistrationResponse{ID: ambulance.AmbulanceID, BlockID: blockID})
		},
	}
}

func (c *cli) nearestCmd() *cobra.Command {
	var lat, lon float64
	var limit int

	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "List hospitals nearest to a point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.validate.Var(lat, "latitude") != nil || c.validate.Var(lon, "longitude") != nil {
				return fail(cmd.OutOrStdout(), fmt.Errorf("invalid coordinates %v,%v", lat, lon))
			}
			a, err := c.dispatcher(cmd.Context())
			if err != nil {
				return fail(cmd.OutOrStdout(), err)
			}
			defer a.Close()
			hospitals, err := a.Service.NearestHospitals(cmd.Context(), models.Location{Latitude: lat, Longitude: lon}, limit)
			if err != nil {
				return fail(cmd.OutOrStdout(), err)
			}
			return writeJSON(cmd.OutOrStdout(), hospitals)
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude in degrees")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude in degrees")
	cmd.Flags().IntVar(&limit, "limit", 5, "maximum number of hospitals")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	return cmd
}

func (c *cli) ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect the ledger",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <anchor_id>",
		Short: "Print an anchored block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.dispatcher(cmd.Context())
			if err != nil {
				return fail(cmd.OutOrStdout(), err)
			}
			defer a.Close()
			block, err := a.Service.GetLedgerBlock(cmd.Context(), args[0])
			if err != nil {
				return fail(cmd.OutOrStdout(), err)
			}
			return writeJSON(cmd.OutOrStdout(), block)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "verify",
		Short: "Check hash links of the local ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := ledger.OpenChainLedger(c.cfg.LedgerPath, c.log)
			if err != nil {
				return fail(cmd.OutOrStdout(), err)
			}
			defer chain.Close()

			if err := chain.Verify(); err != nil {
				return fail(cmd.OutOrStdout(), err)
			}
			height, err := chain.Height()
			if err != nil {
				return fail(cmd.OutOrStdout(), err)
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{"status": "ok", "blocks": height})
		},
	})
	return cmd
}

func (c *cli) migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	// migrate up
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is required")
			}
			return app.RunMigrations(c.cfg.DatabaseURL, c.cfg.MigrationsDir, c.log)
		},
	})
	return cmd
}
