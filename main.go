package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/thelolagemann/gbcore/internal/gameboy"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	trace := flag.Bool("trace", false, "log every executed instruction (implies -debug)")
	steps := flag.Int("steps", 0, "stop after this many instructions, 0 runs until the CPU halts")
	saves := flag.String("saves", "saves", "the folder battery saves are kept in, empty to disable")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <rom>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := log.InfoLevel
	if *debug || *trace {
		level = log.DebugLevel
	}
	logger := log.NewWithLevel(level)

	if flag.NArg() < 1 {
		logger.Infof("no ROM given, nothing to run")
		flag.Usage()
		return
	}

	romFile := flag.Arg(0)
	rom, err := utils.LoadFile(romFile)
	if err != nil {
		logger.Errorf("reading %s: %s", romFile, err)
		os.Exit(1)
	}

	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.WithSerialOutput(os.Stdout),
		gameboy.MaxSteps(*steps),
	}
	if *trace {
		opts = append(opts, gameboy.Trace())
	}
	if *saves != "" {
		opts = append(opts, gameboy.WithSaveDirectory(*saves))
	}

	gb := gameboy.New(opts...)
	if err := gb.LoadROM(rom); err != nil {
		logger.Errorf("%s: %s", romFile, err)
		os.Exit(1)
	}
	if err := gb.Run(); err != nil {
		os.Exit(1)
	}
}
