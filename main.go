package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/flow-hydraulics/launcher-settings/api"
	"github.com/flow-hydraulics/launcher-settings/configs"
	"github.com/flow-hydraulics/launcher-settings/handlers"
	"github.com/flow-hydraulics/launcher-settings/launcher"
	"github.com/flow-hydraulics/launcher-settings/state"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

var (
	sha1ver   string // sha1 revision used to build the program
	buildTime string // when the executable was built
)

func main() {
	var (
		printVersion bool
		envFilePath  string
	)

	// If we should just print the version number and exit
	flag.BoolVar(&printVersion, "version", false, "if true, print version and exit")
	flag.StringVar(&envFilePath, "envfile", "", "path to a file of environment variables to load")
	flag.Parse()

	if printVersion {
		d, err := launcher.Read()
		if err != nil {
			panic(err)
		}
		fmt.Printf("v%s build on %s from sha1 %s\n", d.Version, buildTime, sha1ver)
		os.Exit(0)
	}

	cfg, err := configs.ParseConfig(&configs.Options{EnvFilePath: envFilePath})
	if err != nil {
		panic(err)
	}

	runServer(cfg)

	os.Exit(0)
}

func runServer(cfg *configs.Config) {
	configs.ConfigureLogger(cfg.LogLevel)

	log.Info("Starting server")

	state.Configure(cfg)

	// Warm up the application state. A failure is not fatal, requests keep
	// retrying initialization and get 503 until it succeeds.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := state.Get(ctx); err != nil {
		log.WithFields(log.Fields{"error": err}).Warn("Application state not available yet")
	}
	cancel()

	settingsService := api.NewSettings(state.Global())
	settingsHandler := handlers.NewSettings(settingsService)

	r := mux.NewRouter()

	// Catch the api version
	rv := r.PathPrefix("/{apiVersion}").Subrouter()

	// Debug
	rv.Handle("/debug", handlers.Debug("https://github.com/flow-hydraulics/launcher-settings", sha1ver, buildTime)).Methods(http.MethodGet)

	// Health
	rv.HandleFunc("/health/ready", handlers.HandleHealthReady).Methods(http.MethodGet)
	rv.Handle("/health/liveness", handlers.Liveness(func(r *http.Request) (interface{}, error) {
		st, err := state.Get(r.Context())
		if err != nil {
			return nil, err
		}
		return map[string]string{"state": st.ID.String(), "version": st.Launcher.Version}, nil
	})).Methods(http.MethodGet)

	// Settings
	rv.Handle("/settings", settingsHandler.Get()).Methods(http.MethodGet)
	rv.Handle("/settings", handlers.UseJson(settingsHandler.Set())).Methods(http.MethodPut)

	// Version
	rv.Handle("/version", settingsHandler.Version()).Methods(http.MethodGet)

	h := http.TimeoutHandler(r, cfg.ServerRequestTimeout, "request timed out")
	h = handlers.UseCors(h)
	h = handlers.UseLogging(h)
	h = handlers.UseCompress(h)

	// Server boilerplate
	srv := &http.Server{
		Handler:      h,
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		WriteTimeout: 0, // Disabled, set cfg.ServerRequestTimeout instead
		ReadTimeout:  0, // Disabled, set cfg.ServerRequestTimeout instead
	}

	// Run our server in a goroutine so that it doesn't block.
	go func() {
		log.
			WithFields(log.Fields{
				"host": cfg.Host,
				"port": cfg.Port,
			}).
			Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn(err)
		}
	}()

	// Trap interupt and gracefully shutdown the server
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)

	// Block until we receive our signal.
	sig := <-c

	log.Infof("Got signal: %s. Shutting down..", sig)

	// Create a deadline to wait for.
	ctx, cancel = context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warnf("Error in server shutdown: %s", err)
	}
}
