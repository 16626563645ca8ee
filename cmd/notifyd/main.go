// notifyd is a standalone receiver for pushed Google Checkout
// notifications: it authenticates the gateway, acknowledges every
// notification, and exports prometheus metrics.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/merchantkit/gcheckout/logger"
	"github.com/merchantkit/gcheckout/metrics"
	"github.com/merchantkit/gcheckout/types"
	"github.com/merchantkit/gcheckout/webhook"
)

type config struct {
	IsDebug bool `yaml:"is_debug" env:"DEBUG" env-default:"false"`
	Listen  struct {
		BindIP string `yaml:"bind_ip" env:"BIND_IP" env-default:"0.0.0.0"`
		Port   string `yaml:"port" env:"PORT" env-default:"5200"`
	} `yaml:"listen"`
	Merchant struct {
		ID  string `yaml:"id" env:"MERCHANT_ID" env-default:""`
		Key string `yaml:"key" env:"MERCHANT_KEY" env-default:""`
	} `yaml:"merchant"`
}

func main() {
	configPath := flag.String("conf", "config.yml", "path to config file")
	flag.Parse()

	var conf config
	if err := cleanenv.ReadConfig(*configPath, &conf); err != nil {
		// A missing file is fine when everything comes from the
		// environment.
		if err := cleanenv.ReadEnv(&conf); err != nil {
			fmt.Printf("load config: %v\n", err)
			return
		}
	}

	level := "info"
	if conf.IsDebug {
		level = "debug"
	}
	log := logger.NewZapLogger(level)

	server, err := webhook.NewServer(webhook.Config{
		Merchant: types.Merchant{ID: conf.Merchant.ID, Key: conf.Merchant.Key},
		Logger:   log,
		Metrics:  metrics.NewPrometheusRecorder(),
	})
	if err != nil {
		log.Error("boot", map[string]any{"error": err.Error()})
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", server.Handler())

	addr := strings.Join([]string{conf.Listen.BindIP, conf.Listen.Port}, ":")
	log.Info("listening", map[string]any{"addr": addr})
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error("server stopped", map[string]any{"error": err.Error()})
	}
}
