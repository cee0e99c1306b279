package cruddemo

import (
	goversion "github.com/caarlos0/go-version"
)

// Set at build time:
//
//	go build -ldflags "-X github.com/luv2code/cruddemo/pkg/cruddemo.version=1.2.0 ..."
var (
	version   = ""
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""
)

const asciiName = `
  ___ _ __ _   _  __| | __| | ___ _ __ ___   ___
 / __| '__| | | |/ _' |/ _' |/ _ \ '_ ' _ \ / _ \
| (__| |  | |_| | (_| | (_| |  __/ | | | | | (_) |
 \___|_|   \__,_|\__,_|\__,_|\___|_| |_| |_|\___/`

func buildVersion() goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails("cruddemo", "Student and employee CRUD demos over GORM and SurrealDB", "https://github.com/luv2code/cruddemo"),
		func(i *goversion.Info) {
			i.ASCIIName = asciiName
			if commit != "" {
				i.GitCommit = commit
			}
			if version != "" {
				i.GitVersion = version
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}
