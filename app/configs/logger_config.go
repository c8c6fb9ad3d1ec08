package configs

import (
	"go.uber.org/zap"
)

// NewLogger builds a development logger unless APP_ENV is production.
func NewLogger(env ENV) (*zap.Logger, error) {
	if env.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
