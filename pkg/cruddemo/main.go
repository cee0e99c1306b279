package cruddemo

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Main parses args, builds the application through the injector and runs the
// selected command. The printed demo and coach lines go to standard output.
func Main(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout)
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cmd, config, err := Parse(args)
	if err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}

	switch c := cmd.(type) {
	case *VersionCommand:
		_, err := fmt.Fprintln(out, buildVersion().String())
		return err
	case *CoachCommand:
		workoutCoach, cleanup, err := InitializeCoach(config, out)
		if err != nil {
			return fmt.Errorf("failed to create coach: %w", err)
		}
		defer cleanup()
		_, err = fmt.Fprintln(out, workoutCoach.DailyWorkout())
		return err
	case *RunCommand, *StudentsCommand, *MigrateCommand:
	default:
		return fmt.Errorf("unknown command type: %T", c)
	}

	app, cleanup, err := InitializeApp(ctx, config, out)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	defer cleanup()

	switch c := cmd.(type) {
	case *MigrateCommand:
		if err := app.Migrate(ctx, c); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	case *RunCommand:
		if err := app.Run(ctx, c); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case *StudentsCommand:
		if err := app.Students(ctx, c); err != nil {
			return fmt.Errorf("student demo failed: %w", err)
		}
	}
	return nil
}
