// Package gitj builds a time journal out of commit messages. Authors annotate
// commits with bracketed durations and statuses, like "[1h30 done]" or
// "[2][30][wip]", and gitj recovers them as structured entries.
//
// Related packages: config, commit, runner, model, vcs, vcs/gitcli,
// vcs/githubapi
package gitj

import "github.com/jeffrom/gitj/config"

// Config holds most of the configuration variables for gitj. This struct is
// intended for command-line use, so not all of its attributes are applicable
// to every operation.
//
// See "go doc github.com/jeffrom/gitj/config Config" for more information.
type Config = config.Config
