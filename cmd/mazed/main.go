// mazed serves the maze API over HTTP.
//
//	mazed -addr :8080 -config "rows=20,cols=20,format=json"
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/lvlmaze/internal/config"
	"github.com/katalvlaran/lvlmaze/internal/server"
)

var (
	flagAddr    = flag.String("addr", ":8080", "Listen address.")
	flagConfig  = flag.String("config", "format=json", `Default settings as "key=value,..."; requests override them.`)
	flagTimeout = flag.Duration("timeout", 10*time.Second, "Per-request timeout; 0 disables it.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	base, err := config.Parse(*flagConfig)
	if err != nil {
		klog.Exitf("-config: %v", err)
	}

	srv := &http.Server{
		Addr:              *flagAddr,
		Handler:           server.NewRouter(base, *flagTimeout),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		klog.Infof("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			klog.Errorf("shutdown: %v", err)
		}
	}()

	klog.Infof("mazed listening on %s (defaults %+v)", *flagAddr, base)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		klog.Exitf("serve: %v", err)
	}
	klog.Flush()
}
