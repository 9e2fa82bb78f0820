package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/imdario/mergo"
	"github.com/spf13/pflag"

	"github.com/jeffrom/gitj/config"
	"github.com/jeffrom/gitj/runner"
	"github.com/jeffrom/gitj/vcs"
	"github.com/jeffrom/gitj/vcs/gitcli"
	"github.com/jeffrom/gitj/vcs/githubapi"
)

// overridden by go build -X
var Version = "dev"

const configFileName = "gitj.yaml"

func main() {
	if err := run(os.Args, config.DefaultTermIO); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(rawArgs []string, tio config.TerminalIO) error {
	flagCfg := config.Config{}

	var help bool
	var version bool
	var cfgFile string
	var messages []string
	var check bool
	var readStats bool
	var readAllStats bool
	var printConfig bool
	flags := pflag.NewFlagSet("gitj", pflag.ContinueOnError)
	flags.SetOutput(tio.Stderr)
	flags.BoolVarP(&help, "help", "h", false, "show help")
	flags.BoolVarP(&version, "version", "V", false, "print version and exit")
	flags.StringVar(&flagCfg.Source, "source", "", "read commits from `source` (git or github)")
	flags.StringVar(&flagCfg.Name, "name", "", "project `name` shown above the text journal")
	flags.StringVar(&flagCfg.Repo, "repo", "", "GitHub repository as `owner/name`")
	flags.StringVar(&flagCfg.Token, "token", "", "GitHub API `token` (default $GITJ_GITHUB_TOKEN or $GITHUB_TOKEN)")
	flags.StringVarP(&flagCfg.Branch, "branch", "b", "", "read commits from branch `name` (default current branch)")
	flags.StringVar(&flagCfg.Since, "since", "", "skip commits authored before `date` (YYYY-MM-DD or RFC3339)")
	flags.StringVar(&flagCfg.Me, "me", "", "your author `login` or name")
	flags.BoolVar(&flagCfg.Mine, "mine", false, "only include your own commits (requires --me)")
	flags.StringArrayVar(&flagCfg.Statuses, "status", nil, "only include commits with `status`")
	flags.StringArrayVar(&flagCfg.AllowedStatuses, "allowed-status", nil, "declare allowed `status`es for --check")
	flags.BoolVar(&flagCfg.RequireDuration, "require-duration", false, "make --check fail on commits without a duration")
	flags.StringVarP(&flagCfg.Output, "output", "o", "", "output `format` (text, json or yaml)")
	flags.StringVar(&flagCfg.TemplatePath, "template", "", "path to a go text/template `file` for text output")
	flags.StringArrayVarP(&messages, "message", "m", nil, "groom commit message `body` instead of reading commits (- reads stdin)")
	flags.BoolVarP(&check, "check", "C", false, "validate that commits carry time metadata")
	flags.BoolVarP(&readStats, "stats", "S", false, "print journal stats (with top tens)")
	flags.BoolVarP(&readAllStats, "stats-all", "A", false, "print all journal stats")
	flags.BoolVarP(&flagCfg.Verbose, "verbose", "v", false, "print additional debugging info")
	flags.BoolVarP(&flagCfg.Quiet, "quiet", "q", false, "print as little as necessary")
	flags.StringVarP(&cfgFile, "config", "c", "", "specify config `file`")
	flags.BoolVar(&printConfig, "print-config", false, "print configuration and exit")

	if err := flags.Parse(rawArgs); err != nil {
		return err
	}
	args := flags.Args()[1:]

	cfg := config.NewWithTerminalIO(nil, &tio)
	if help {
		usage(cfg, flags)
		return nil
	}
	if version {
		cfg.Printf("%s", Version)
		return nil
	}

	gitjYAML, err := readGitjYAML(cfgFile)
	if err != nil {
		return err
	}
	if gitjYAML != nil {
		if err := mergo.Merge(&cfg, gitjYAML, mergo.WithOverride); err != nil {
			return err
		}
	}
	if err := mergo.Merge(&cfg, flagCfg, mergo.WithOverride); err != nil {
		return err
	}
	if cfg.Verbose {
		b, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		cfg.Debugf("config: %s", string(b))
	}

	if printConfig {
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		tio.Printf("%s", b)
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	// done setting up config

	var ref string
	if len(args) > 0 {
		ref = args[0]
	}
	ctx := context.Background()

	if len(messages) > 0 {
		return runMessages(ctx, cfg, messages, check)
	}

	src, err := newSource(cfg)
	if err != nil {
		return err
	}
	rnr, err := runner.New(cfg, src)
	if err != nil {
		return err
	}

	if readStats || readAllStats {
		stats, err := rnr.Stats(ctx, ref)
		if err != nil {
			return err
		}
		return stats.TextSummary(tio.Stdout, readAllStats)
	}

	if check {
		if _, err := rnr.CheckCommits(ctx, ref); err != nil {
			return writeCheckFailure(cfg, err)
		}
		cfg.Printf("OK")
		return nil
	}

	entries, err := rnr.Journal(ctx, ref)
	if err != nil {
		return err
	}
	return rnr.WriteJournal(tio.Stdout, entries)
}

func runMessages(ctx context.Context, cfg config.Config, messages []string, check bool) error {
	rnr, err := runner.New(cfg, nil)
	if err != nil {
		return err
	}

	if len(messages) == 1 && messages[0] == "-" {
		if !cfg.Term.StdinIsPipe() {
			return errors.New("--message -: stdin is not a pipe")
		}
		if check {
			if _, err := rnr.CheckReadMessage(ctx, cfg.Term.Stdin); err != nil {
				return writeCheckFailure(cfg, err)
			}
			cfg.Printf("OK")
			return nil
		}
		b, err := io.ReadAll(cfg.Term.Stdin)
		if err != nil {
			return err
		}
		messages = []string{string(b)}
	}

	if check {
		if _, err := rnr.CheckMessages(ctx, messages); err != nil {
			return writeCheckFailure(cfg, err)
		}
		cfg.Printf("OK")
		return nil
	}
	return rnr.WriteJournal(cfg.Term.Stdout, rnr.GroomMessages(messages))
}

func writeCheckFailure(cfg config.Config, err error) error {
	cf := runner.CheckFailure{}
	if errors.As(err, &cf) {
		if werr := cf.WriteFailure(cfg.Term.Stdout); werr != nil {
			cfg.Errorf("failed to write invalid commit information: %v", werr)
		}
	}
	return err
}

func newSource(cfg config.Config) (vcs.Interface, error) {
	switch cfg.Source {
	case config.SourceGitHub:
		return githubapi.New(cfg, nil)
	default:
		return gitcli.New(cfg, ""), nil
	}
}

func usage(cfg config.Config, flags *pflag.FlagSet) {
	cfg.Printf(`%s [ref]

Builds a time journal from commit messages. Annotate commits with the time
spent and a status, in either notation:

  feat: add login [1h30 done]
  fix: bug [45m wip]
  refactor [2][30][review]

FLAGS
%s

EXAMPLES

# print the journal for the current branch
$ gitj

# only your commits since the start of the year, as json
$ gitj --me jeffrom --mine --since 2024-01-01 -o json

# read commits from GitHub instead of the local repository
$ gitj --source github --repo jeffrom/gitj main

# total time per status and author
$ gitj --stats

# validate a commit message from a commit-msg hook
$ gitj --check -m - < .git/COMMIT_EDITMSG
`, filepath.Base(os.Args[0]), flags.FlagUsages())
}

func readGitjYAML(p string) (*config.Config, error) {
	if p != "" {
		return readConfigFile(p)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	for {
		candPath := filepath.Join(wd, configFileName)
		cfg, err := readConfigFile(candPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				parent := filepath.Dir(wd)
				if parent == wd {
					break
				}
				wd = parent
				continue
			}
			return nil, err
		}
		return cfg, nil
	}
	return nil, nil
}

func readConfigFile(p string) (*config.Config, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	cfg := &config.Config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return cfg, nil
}
