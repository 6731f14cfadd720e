// Package commands implements the d360 CLI commands.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/d360-io/d360/pkg/d360"
	"github.com/d360-io/d360/pkg/driveclient"
	"github.com/spf13/viper"
)

// createClient builds an API client from the resolved configuration.
func createClient() (d360.Client, error) {
	endpoint := viper.GetString("api")
	if endpoint == "" {
		return nil, fmt.Errorf("%w: use --api or 'd360 config set-api'", d360.ErrAPIEndpointRequired)
	}

	token := viper.GetString("token")
	if token == "" {
		return nil, fmt.Errorf("%w: use --token or 'd360 config set-token'", d360.ErrAPITokenRequired)
	}

	config := &d360.Config{
		APIEndpoint: endpoint,
		APIToken:    token,
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = newStderrLogger()
	}

	return driveclient.New(context.Background(), config)
}

// stderrLogger writes structured log lines to standard error.
type stderrLogger struct{}

func newStderrLogger() *stderrLogger {
	return &stderrLogger{}
}

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s", level, msg)
	for k, v := range fields {
		fmt.Fprintf(os.Stderr, " %s=%v", k, v)
	}
	fmt.Fprintln(os.Stderr)
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

func (l *stderrLogger) Info(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

func (l *stderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

func (l *stderrLogger) Error(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}
