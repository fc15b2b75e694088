package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"gopruino/config"
	"gopruino/host/translate"
)

var f = translate.From

var (
	configFile string
	envFile    string
	device     string
	baud       uint32
	cpuFreq    uint32
	verbose    bool
)

// rootCmd runs the simulated board with its interpreter on the console
var rootCmd = &cobra.Command{
	Use:   "gopruino-sim",
	Short: "Run the interpreter on a simulated PIC32MZ board.",
	Long: `Run the interpreter on a simulated PIC32MZ board. ` +
		`The board's console UART is attached to this terminal, or to a host ` +
		`serial port with --device. Press Ctrl-] to leave.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnv(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SilenceUsage = true

		cfg, err := boardConfig(cmd)
		if err != nil {
			log.Print(f("configuration: %v", err))
			atexit.Exit(1)
		}

		if err := run(cmd.Context(), cfg); err != nil {
			log.Print(f("simulator: %v", err))
			atexit.Exit(1)
		}
		atexit.Exit(0)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "board configuration file (JSON)")
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "environment file read before flags are applied")
	rootCmd.Flags().StringVar(&device, "device", "", "host serial port for the console (default: this terminal)")
	rootCmd.Flags().Uint32Var(&baud, "baud", 0, "console baud rate")
	rootCmd.Flags().Uint32Var(&cpuFreq, "cpu-freq", 0, "CPU frequency in Hz")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log HAL debug output and the timing ring")
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		atexit.Exit(1)
	}
}

// loadEnv reads the env file, then lets GOPRUINO_* variables stand in for
// flags that were not given
func loadEnv(cmd *cobra.Command) error {
	if err := godotenv.Load(envFile); err != nil && cmd.Flags().Changed("env-file") {
		return err
	}

	vars := map[string]string{
		"device":   "GOPRUINO_DEVICE",
		"baud":     "GOPRUINO_BAUD",
		"cpu-freq": "GOPRUINO_CPU_FREQ",
	}
	for flag, name := range vars {
		v, ok := os.LookupEnv(name)
		if !ok || cmd.Flags().Changed(flag) {
			continue
		}
		if err := cmd.Flags().Set(flag, v); err != nil {
			return err
		}
	}
	return nil
}

// boardConfig layers the flags over the config file
func boardConfig(cmd *cobra.Command) (*config.BoardConfig, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.LoadFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("device") {
		cfg.HostDevice = device
	}
	if changed("baud") {
		cfg.Baud = baud
	}
	if changed("cpu-freq") {
		cfg.CPUFrequency = cpuFreq
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
