// axicheck runs the AXI4-Lite access-policy compliance suite against the
// in-repo register-file model.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/hdlverify/axilite/compliance"
	"github.com/hdlverify/axilite/sim"
	"github.com/hdlverify/axilite/txrecording"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		logrus.Error(err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func rootCmd() *cobra.Command {
	// A .env file can override the flag defaults, e.g. AXICHECK_SEED=7.
	_ = godotenv.Load()

	cmd := &cobra.Command{
		Use:   "axicheck",
		Short: "Run AXI4-Lite register-file compliance scenarios",
		Long: `axicheck builds a simulated testbench around the register-file model,
drives it with the AXI4-Lite bus agent, and checks every response against
the access-policy model.`,
		SilenceUsage: true,
		RunE:         run,
	}

	cmd.Flags().Int("data-regs", envInt("AXICHECK_DATA_REGS", 8),
		"number of data registers")
	cmd.Flags().String("access-word", envStr("AXICHECK_ACCESS_WORD", "0x924"),
		"packed 2-bit-per-index access-policy word")
	cmd.Flags().Int64("seed", envInt64("AXICHECK_SEED", 1),
		"seed for the randomized agent delays")
	cmd.Flags().Float64("budget-ns", 500,
		"simulated time budget per scenario, in nanoseconds")
	cmd.Flags().String("trace", "",
		"record transactions into the given SQLite database")
	cmd.Flags().Bool("verbose", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	dataRegs, _ := cmd.Flags().GetInt("data-regs")
	accessWordStr, _ := cmd.Flags().GetString("access-word")
	seed, _ := cmd.Flags().GetInt64("seed")
	budgetNs, _ := cmd.Flags().GetFloat64("budget-ns")
	trace, _ := cmd.Flags().GetString("trace")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	accessWord, err := strconv.ParseUint(accessWordStr, 0, 64)
	if err != nil {
		return fmt.Errorf("parsing access word %q: %w", accessWordStr, err)
	}

	cfg := compliance.Config{
		DataRegs:   dataRegs,
		AccessWord: accessWord,
		Seed:       seed,
	}
	budget := sim.VTimeInSec(budgetNs * 1e-9)

	var hooks []sim.Hook
	if trace != "" {
		recorder := txrecording.New(trace)
		hooks = append(hooks, txrecording.NewTxLogger(recorder))
		atexit.Register(func() { recorder.Flush() })
	}

	logrus.WithFields(logrus.Fields{
		"data-regs":   dataRegs,
		"access-word": fmt.Sprintf("0x%X", accessWord),
		"seed":        seed,
	}).Info("running compliance suite")

	failed := 0
	for _, r := range compliance.RunAll(cfg, budget, hooks...) {
		entry := logrus.WithField("scenario", r.Scenario)

		switch {
		case r.Skipped:
			entry.WithError(r.Err).Warn("skipped")
		case r.Err != nil:
			entry.WithError(r.Err).Error("failed")
			failed++
		default:
			entry.Info("passed")
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d scenario(s) failed", failed)
	}

	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
