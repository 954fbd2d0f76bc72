package main

import (
	"github.com/dustin/go-humanize"
	"github.com/idena-network/genesis-unpack/config"
	"github.com/idena-network/genesis-unpack/genesis"
	"github.com/idena-network/genesis-unpack/log"
	"github.com/mattn/go-isatty"
	"gopkg.in/urfave/cli.v1"
	"os"
	"runtime"
)

func main() {
	setupLogger(config.DefaultVerbosity)

	app := cli.NewApp()
	app.Name = "genesisunpack"
	app.Usage = "Unpack the genesis state of every supported network"

	app.Flags = []cli.Flag{
		config.CfgFileFlag,
		config.BaseDirFlag,
		config.VerbosityFlag,
	}

	app.Action = func(context *cli.Context) error {
		cfg, err := config.MakeConfig(context)
		if err != nil {
			return err
		}
		setupLogger(cfg.Verbosity)

		networks := config.Networks()
		if err := config.ValidateNetworks(networks); err != nil {
			return err
		}

		unpacker := genesis.NewUnpacker(cfg.BaseDir)
		if err := unpacker.Unpack(networks); err != nil {
			return err
		}

		stats := unpacker.Stats()
		log.Info("Genesis states are ready",
			"extracted", stats.Extracted(),
			"placeholders", stats.Placeholders(),
			"kept", stats.Kept(),
			"written", humanize.Bytes(uint64(stats.Bytes())))
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func setupLogger(verbosity int) {
	logLvl := log.Lvl(verbosity)

	var handler log.Handler
	if runtime.GOOS == "windows" {
		handler = log.LvlFilterHandler(logLvl, log.StreamHandler(os.Stdout, log.LogfmtFormat()))
	} else {
		useColor := isatty.IsTerminal(os.Stderr.Fd())
		handler = log.LvlFilterHandler(logLvl, log.StreamHandler(os.Stderr, log.TerminalFormat(useColor)))
	}
	if logLvl >= log.LvlDebug {
		handler = log.CallerFileHandler(handler)
	}
	log.Root().SetHandler(handler)
}
