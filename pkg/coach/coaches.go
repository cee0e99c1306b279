package coach

import "io"

// BaseballCoach is the primary coach. Every coach embeds hooks, which
// provides Startup and Cleanup.
type BaseballCoach struct{ hooks }

// NewBaseballCoach prints the constructor line for BaseballCoach on out and
// returns the coach.
func NewBaseballCoach(out io.Writer) *BaseballCoach {
	return &BaseballCoach{hooks: newHooks(out, "BaseballCoach")}
}

func (*BaseballCoach) DailyWorkout() string {
	return "Spend 30 minutes batting practice"
}

// CricketCoach is a cricket coach.
type CricketCoach struct{ hooks }

// NewCricketCoach prints the constructor line for CricketCoach on out and
// returns the coach.
func NewCricketCoach(out io.Writer) *CricketCoach {
	return &CricketCoach{hooks: newHooks(out, "CricketCoach")}
}

func (*CricketCoach) DailyWorkout() string {
	return "Practice fast bowling for 15 minutes"
}

// TennisCoach is a tennis coach.
type TennisCoach struct{ hooks }

// NewTennisCoach prints the constructor line for TennisCoach on out and
// returns the coach.
func NewTennisCoach(out io.Writer) *TennisCoach {
	return &TennisCoach{hooks: newHooks(out, "TennisCoach")}
}

func (*TennisCoach) DailyWorkout() string {
	return "Practice your backhand volley"
}

// TrackCoach is a track coach.
type TrackCoach struct{ hooks }

// NewTrackCoach prints the constructor line for TrackCoach on out and
// returns the coach.
func NewTrackCoach(out io.Writer) *TrackCoach {
	return &TrackCoach{hooks: newHooks(out, "TrackCoach")}
}

func (*TrackCoach) DailyWorkout() string {
	return "Run a hard 5k!"
}
