package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	alwaysserve "github.com/always-serve/always-serve"
	"github.com/always-serve/always-serve/store"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// CLI flags
	portFlag           int
	rootFlag           string
	providerFlag       string
	dbFilenameFlag     string
	configFilenameFlag string
	dispositionFlag    string
	verbosityTraceFlag bool
	logFilenameFlag    string

	// this is set by goreleaser
	version string
)

func init() {
	flag.IntVar(&portFlag, "port", 8080, "Port to listen on")
	flag.StringVar(&rootFlag, "root", ".", "Directory to serve (fs provider)")
	flag.StringVar(&providerFlag, "provider", "fs", "Blob provider to use: fs, sqlite or memory")
	flag.StringVar(&dbFilenameFlag, "db", "blobs.db", "Blob DB file name (sqlite provider)")
	flag.StringVar(&configFilenameFlag, "config", "", "Path to config file")
	flag.StringVar(&dispositionFlag, "disposition", "", "Content-Disposition type to send (e.g. attachment)")
	flag.BoolVar(&verbosityTraceFlag, "vv", false, "Verbosity: trace logging")
	flag.StringVar(&logFilenameFlag, "log-file", "", "Log file to use (in addition to stdout)")

	if version == "" {
		version = "DEV"
	}
}

func main() {
	flag.Parse()

	// set log level
	logLevel := zerolog.DebugLevel
	if verbosityTraceFlag {
		logLevel = zerolog.TraceLevel
	}

	// set up log output to stdout
	// also output to logfile if specified
	logOutputs := make([]io.Writer, 0)
	logOutputs = append(logOutputs, zerolog.ConsoleWriter{Out: os.Stdout})
	if logFilenameFlag != "" {
		if logFileOutput, err := os.OpenFile(logFilenameFlag, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644); err != nil {
			log.Fatal().Err(err).Msg("Cannot open log file")
		} else {
			logOutputs = append(logOutputs, logFileOutput)
		}
	}
	multiWriter := zerolog.MultiLevelWriter(logOutputs...)
	log.Logger = log.Level(logLevel).Output(multiWriter).
		With().Str("version", version).Logger()

	serveConfig := alwaysserve.Config{
		Logger:      &log.Logger,
		Disposition: dispositionFlag,
	}

	port := portFlag
	root := rootFlag
	provider := providerFlag
	dbFilename := dbFilenameFlag

	if configFilenameFlag != "" {
		config, err := getConfig(configFilenameFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("Could not read config file")
		}
		if config.Port > 0 {
			port = config.Port
		}
		if config.Root != "" {
			root = config.Root
		}
		if config.Provider != "" {
			provider = config.Provider
		}
		if config.DB != "" {
			dbFilename = config.DB
		}
	}

	switch provider {
	case "fs":
		serveConfig.Store = store.NewFS(root)
	case "sqlite":
		serveConfig.Store = store.NewSQLite(dbFilename)
	case "memory":
		serveConfig.Store = store.NewMem()
	default:
		log.Fatal().Msgf("Unsupported blob provider: %s", provider)
	}

	server := alwaysserve.CreateServer(serveConfig)
	router := chi.NewRouter()
	router.Handle("/*", server)

	log.Info().Msgf("Serving %s blobs on port %v", provider, port)
	err := http.ListenAndServe(fmt.Sprintf(":%d", port), router)

	if err != nil {
		panic(err)
	}
}
