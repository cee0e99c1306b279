//go:build wireinject
// +build wireinject

package cruddemo

import (
	"context"
	"io"

	"github.com/google/wire"
	"github.com/luv2code/cruddemo/pkg/coach"
)

// InitializeApp builds the application for the store-backed commands.
func InitializeApp(ctx context.Context, config *Config, out io.Writer) (*App, func(), error) {
	wire.Build(AppSet)
	return nil, nil, nil
}

// InitializeCoach builds only the coach.
func InitializeCoach(config *Config, out io.Writer) (coach.Coach, func(), error) {
	wire.Build(CoachSet)
	return nil, nil, nil
}
