// bytesize converts byte sizes between raw counts and human-readable
// SI/IEC strings.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/setevik/bytesize"
	"github.com/setevik/bytesize/internal/config"
)

var version = "dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "convert":
			runConvert(os.Args[2:])
			return
		case "table":
			runTable(os.Args[2:])
			return
		case "version":
			fmt.Println("bytesize", version)
			return
		case "help", "-h", "--help":
			usage()
			return
		}
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	// Default: treat the arguments as a convert invocation.
	runConvert(os.Args[1:])
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: bytesize [convert] [flags] <size>
       bytesize table
       bytesize version

Examples:
  bytesize 1.5 GiB            # 1.5 GiB
  bytesize -si 1.5 GiB        # 1.6 GB
  bytesize -bytes 1.5 GiB     # 1610612736
  bytesize -precision 3 301kB # 293.945 KiB`)
}

func runConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	si := fs.Bool("si", false, "render in SI (decimal) units")
	iec := fs.Bool("iec", false, "render in IEC (binary) units")
	precision := fs.Int("precision", -1, "fractional digits (-1 uses the config default)")
	short := fs.Bool("short", false, "short style, e.g. 1.5G")
	raw := fs.Bool("bytes", false, "print the raw byte count")
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg.Log.Level)

	input := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if input == "" {
		usage()
		os.Exit(2)
	}

	count, err := bytesize.Parse(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bytesize: %v\n", err)
		os.Exit(1)
	}

	slog.Debug("parsed input", "input", input, "bytes", uint64(count))

	if *raw {
		fmt.Println(uint64(count))
		return
	}

	spec := cfg.Spec()
	if *si {
		spec.System = bytesize.SI
	}
	if *iec {
		spec.System = bytesize.IEC
	}
	if *precision >= 0 {
		spec.Precision = *precision
	}
	if *short {
		spec.Short = true
	}

	fmt.Println(count.Format(spec))
}

func runTable(args []string) {
	fs := flag.NewFlagSet("table", flag.ExitOnError)
	fs.Parse(args)

	printTable("SI (decimal)", bytesize.SITable)
	fmt.Println()
	printTable("IEC (binary)", bytesize.IECTable)
}

func printTable(name string, t *bytesize.Table) {
	fmt.Printf("%s\n", name)
	for _, u := range t.Units() {
		fmt.Printf("  %-4s %d\n", u.Symbol, u.Factor)
	}
}

func setupLogging(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
