package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"

	"static-http-server/httpd"
	"static-http-server/tftp"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <port> <root_directory>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", "", "optional TOML config file")
	tftpEnable := flag.Bool("tftp", false, "also serve the root over TFTP")
	tftpAddr := flag.String("tftp-addr", "", "TFTP listen address (default :69)")
	flag.Usage = usage
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	// Positional arguments override the config file.
	if args := flag.Args(); len(args) >= 2 {
		cfg.Port = args[0]
		cfg.RootDir = args[1]
	}
	if *tftpEnable {
		cfg.TFTPEnabled = true
	}
	if *tftpAddr != "" {
		cfg.TFTPAddr = *tftpAddr
	}

	if cfg.Port == "" || cfg.RootDir == "" {
		usage()
		os.Exit(1)
	}

	loggerHTTP := log.New(os.Stdout, "http ", log.LstdFlags)
	srv, err := httpd.NewServer(cfg.RootDir, loggerHTTP)
	if err != nil {
		log.Fatalf("invalid root directory %q: %v", cfg.RootDir, err)
	}

	if cfg.TFTPEnabled {
		loggerTFTP := log.New(os.Stdout, "tftp ", log.LstdFlags)
		if _, err := tftp.StartTFTPServer(cfg.TFTPAddr, srv, loggerTFTP); err != nil {
			log.Fatalf("start tftp failure: %v", err)
		}
	}

	color.Green("Server listening on port %s", cfg.Port)
	if err := srv.ListenAndServe(listenAddr(cfg.Port)); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bind socket: %v\n", err)
		os.Exit(2)
	}
}
