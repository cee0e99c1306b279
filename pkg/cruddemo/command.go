package cruddemo

// Command is a parsed sub-command. Name matches the CLI word.
type Command interface {
	Name() string
}

type RunCommand struct{}

func (c *RunCommand) Name() string {
	return "run"
}

// StudentsCommand runs one student DAO demo. An empty Demo runs the default.
type StudentsCommand struct {
	Demo string
}

func (c *StudentsCommand) Name() string {
	return "students"
}

type CoachCommand struct{}

func (c *CoachCommand) Name() string {
	return "coach"
}

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

type VersionCommand struct{}

func (c *VersionCommand) Name() string {
	return "version"
}
