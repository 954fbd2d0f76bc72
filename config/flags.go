package config

import "gopkg.in/urfave/cli.v1"

const (
	DefaultBaseDir   = "."
	DefaultVerbosity = 3
)

var (
	CfgFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "JSON configuration file",
	}
	BaseDirFlag = cli.StringFlag{
		Name:  "basedir",
		Usage: "Directory holding one sub directory per network",
	}
	VerbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "Log verbosity",
		Value: DefaultVerbosity,
	}
)
