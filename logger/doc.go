// Package logger provides structured logging for the picacg client using
// zerolog.
//
// Loggers are values passed into the components that log; there is no
// process-wide logger. A zero configuration yields an info-level console
// logger on stdout.
//
// # Configuration
//
//	log:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(&cfg, "picacg").WithComponent("httpclient")
//	log.Info("request sent", logger.Fields(logger.FieldPath, "/categories"))
package logger
