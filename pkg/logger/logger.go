package logger

import (
	"net"
	"os"

	logrustash "github.com/bshuster-repo/logrus-logstash-hook"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/sirupsen/logrus"
	"gopkg.in/go-extras/elogrus.v7"

	"healthtrack/internal/config"
)

const appName = "healthtrack-api"

// New builds the process logger. Elasticsearch and logstash shipping are
// optional; a hook that cannot be set up is reported on the logger itself
// and skipped.
func New(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	logger.Out = os.Stdout
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.ElkEnable {
		client, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: []string{cfg.ElkURL},
		})
		if err != nil {
			logger.WithError(err).Warn("elasticsearch client unavailable, skipping hook")
		} else if hook, err := elogrus.NewAsyncElasticHook(client, appName, level, cfg.ElkIndex); err != nil {
			logger.WithError(err).Warn("elasticsearch hook unavailable")
		} else {
			logger.Hooks.Add(hook)
		}
	}

	if cfg.LogstashEnable {
		conn, err := net.Dial("udp", cfg.LogstashURL)
		if err != nil {
			logger.WithError(err).Warn("logstash unreachable, skipping hook")
		} else {
			logger.Hooks.Add(logrustash.New(conn, logrustash.DefaultFormatter(logrus.Fields{"type": appName})))
		}
	}

	return logger
}
