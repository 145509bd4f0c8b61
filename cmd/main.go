package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/health-ledger/application"
	"github.com/luca-patrignani/health-ledger/domain/contest"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, logger, os.Stdout); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// newLogger creates a slog logger backed by the PTerm logger at the
// configured level.
func newLogger(cfg config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.ptermLevel()
	if err != nil {
		return nil, err
	}
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level).WithWriter(w))
	return slog.New(handler), nil
}

func newDecider(cfg config, out io.Writer) (contest.Decider, error) {
	switch cfg.Decider {
	case deciderShowdown:
		s, err := contest.NewShowdown()
		if err != nil {
			return nil, err
		}
		if cfg.Output == outputTable {
			s.OnDeal = func(res contest.Result) {
				fmt.Fprintln(out, showdownPanel(res))
			}
		}
		return s, nil
	default:
		return contest.NewCoinFlip(), nil
	}
}

// run replays the example economy: three participants, two transfers and
// a competition, then prints the chain and the balances.
func run(cfg config, logger *slog.Logger, out io.Writer) error {
	decider, err := newDecider(cfg, out)
	if err != nil {
		return err
	}
	engine := application.NewEngine(
		application.WithDecider(decider),
		application.WithLogger(logger),
		application.WithInitialBalance(cfg.InitialBalance),
	)

	for _, id := range []string{"AlicePublicKey", "BobPublicKey", "CharliePublicKey"} {
		if err := engine.Register(id); err != nil {
			return err
		}
	}

	// Rejected operations are logged by the engine and do not stop the demo.
	if _, err := engine.Transfer("AlicePublicKey", "BobPublicKey", 10, "Gift"); err != nil {
		logger.Warn("transfer failed", "error", err)
	}
	if _, err := engine.Transfer("BobPublicKey", "CharliePublicKey", 5, "Debt Payment"); err != nil {
		logger.Warn("transfer failed", "error", err)
	}
	if _, err := engine.Compete("AlicePublicKey", "CharliePublicKey", 15); err != nil {
		logger.Warn("competition failed", "error", err)
	}

	if cfg.Output == outputJSON {
		return writeJSON(engine, out)
	}
	return writeTables(engine, out)
}

func writeJSON(engine *application.Engine, out io.Writer) error {
	doc := struct {
		Valid        bool        `json:"valid"`
		Chain        interface{} `json:"chain"`
		Participants interface{} `json:"participants"`
	}{
		Valid:        engine.ValidateLedger(),
		Chain:        engine.ExportChain(),
		Participants: engine.Participants(),
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writeTables(engine *application.Engine, out io.Writer) error {
	chain, err := chainTable(engine.ExportChain())
	if err != nil {
		return err
	}
	balances, err := balanceTable(engine.Participants())
	if err != nil {
		return err
	}
	fmt.Fprintln(out, pterm.DefaultSection.Sprint("Current Blockchain Status"))
	fmt.Fprintln(out, chain)
	fmt.Fprintln(out, validityLine(engine.ValidateLedger()))
	fmt.Fprintln(out, pterm.DefaultSection.Sprint("User Health Status"))
	fmt.Fprintln(out, balances)
	return nil
}
