// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/f32sim/boot"
	"github.com/ezrec/f32sim/cpu"
	"github.com/ezrec/f32sim/emulator"
	"github.com/ezrec/f32sim/translate"
)

// create opens a log file, or returns nil if no file was requested.
func create(path string) (w io.WriteCloser) {
	if len(path) == 0 {
		return
	}

	w, err := os.Create(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	return
}

func main() {
	var compile string
	var hex string
	var image string
	var steps int
	var abort bool
	var trace string
	var registers string
	var uart string
	var blit string
	var output string
	var listing string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".s file to assemble")
	flag.StringVar(&hex, "x", "", "hex word listing to load")
	flag.StringVar(&image, "b", "", "boot image to load")
	flag.IntVar(&steps, "n", cpu.DEFAULT_BUDGET, "Maximum instructions to execute")
	flag.BoolVar(&abort, "a", false, "Abort on exception")
	flag.StringVar(&trace, "t", "", "Execution trace output")
	flag.StringVar(&registers, "r", "", "Register write log output")
	flag.StringVar(&uart, "u", "", "UART log output")
	flag.StringVar(&blit, "l", "", "Blitter command log output")
	flag.StringVar(&output, "o", "", "Write boot image, do not execute")
	flag.StringVar(&listing, "w", "", "Write hex word listing, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.AbortOnException = abort

	switch {
	case len(compile) != 0:
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		err = emu.Assemble(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	case len(hex) != 0:
		inf, err := os.Open(hex)
		if err != nil {
			log.Fatalf("%v: %v", hex, err)
		}
		defer inf.Close()

		words, err := boot.ReadHex(inf)
		if err == nil {
			err = emu.Load(words)
		}
		if err != nil {
			log.Fatalf("%v: %v", hex, err)
		}
	case len(image) != 0:
		inf, err := os.Open(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		defer inf.Close()

		words, err := boot.Decode(inf)
		if err == nil {
			err = emu.Load(words)
		}
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
	default:
		log.Fatalf("%v: one of -c, -x or -b is required", os.Args[0])
	}

	if len(output) != 0 || len(listing) != 0 {
		words := emu.Program.Binary()
		if len(emu.Program.Opcodes) == 0 {
			log.Fatalf("%v: only assembled programs can be written", os.Args[0])
		}
		if len(output) != 0 {
			ouf := create(output)
			err := boot.Encode(ouf, words)
			if err == nil {
				err = ouf.Close()
			}
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
		}
		if len(listing) != 0 {
			ouf := create(listing)
			err := boot.WriteHex(ouf, words)
			if err == nil {
				err = ouf.Close()
			}
			if err != nil {
				log.Fatalf("%v: %v", listing, err)
			}
		}
		return
	}

	var traceLog, registerLog io.Writer
	if w := create(trace); w != nil {
		defer w.Close()
		traceLog = w
	}
	if w := create(registers); w != nil {
		defer w.Close()
		registerLog = w
	}
	emu.Trace(traceLog, registerLog)

	emu.Devices.Console.Output = os.Stdout
	if w := create(uart); w != nil {
		defer w.Close()
		emu.Devices.Console.Log = w
	}
	if w := create(blit); w != nil {
		defer w.Close()
		emu.Devices.Blitter.Log = w
	}

	emu.Reset()
	err := emu.Run(steps)

	var abortErr cpu.ErrAbort
	switch {
	case err == nil:
	case errors.Is(err, cpu.ErrTimeout):
		translate.Fprintf(os.Stdout, "Timeout\n")
	case errors.As(err, &abortErr):
		fmt.Print(abortErr.Dump())
		log.Printf("%v", err)
		os.Exit(1)
	default:
		log.Fatal(err)
	}
}
