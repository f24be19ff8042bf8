package cli

import (
	"github.com/gnomegl/hourglass/internal/config"
	"github.com/gnomegl/hourglass/internal/utils"
	"github.com/urfave/cli/v2"
)

const helpTemplate = `{{.Name}} - {{.Usage}}

Usage: {{.HelpName}} [options]

Every option can be set through the environment variable shown next to it.

Options:
   {{range .VisibleFlags}}{{.}}
   {{end}}`

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "token",
			Aliases: []string{"t"},
			Usage:   "GitHub personal access token (repo, read:user)",
			EnvVars: []string{"HOURGLASS_GITHUB_TOKEN", "GH_TOKEN"},
		},
		&cli.StringFlag{
			Name:    "timezone",
			Aliases: []string{"z"},
			Usage:   "IANA time zone used to bucket commit hours",
			Value:   config.DefaultTimeZone,
			EnvVars: []string{"TIMEZONE"},
		},
		&cli.StringFlag{
			Name:    "owner",
			Usage:   "owner of the repository holding the README (default: token owner)",
			EnvVars: []string{"README_OWNER"},
		},
		&cli.StringFlag{
			Name:    "repo",
			Usage:   "repository holding the README (default: same as owner)",
			EnvVars: []string{"README_REPO"},
		},
		&cli.StringFlag{
			Name:    "path",
			Usage:   "path of the README inside the repository",
			Value:   config.DefaultReadmePath,
			EnvVars: []string{"README_PATH"},
		},
		&cli.StringFlag{
			Name:    "message",
			Aliases: []string{"m"},
			Usage:   "commit message for the README update",
			Value:   config.DefaultCommitMessage,
			EnvVars: []string{"COMMIT_MESSAGE"},
		},
		&cli.IntFlag{
			Name:    "width",
			Usage:   "number of cells in each bar",
			Value:   config.DefaultBarWidth,
			EnvVars: []string{"BAR_WIDTH"},
		},
		&cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Usage:   "render the chart without touching the README",
			EnvVars: []string{"DRY_RUN"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "trace, debug, info, warn or error",
			Value:   "info",
			EnvVars: []string{"LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "auto, console or json",
			Value:   "auto",
			EnvVars: []string{"LOG_FORMAT"},
		},
		&cli.BoolFlag{
			Name:    "no-banner",
			Usage:   "skip the startup banner",
			EnvVars: []string{"NO_BANNER"},
		},
		&cli.BoolFlag{
			Name:    "no-progress",
			Usage:   "hide the progress bar",
			EnvVars: []string{"NO_PROGRESS"},
		},
	}
}

func NewApp(action cli.ActionFunc) *cli.App {
	cli.AppHelpTemplate = helpTemplate

	return &cli.App{
		Name:    "hourglass",
		Usage:   "Chart when you commit and pin it to your GitHub profile README",
		Version: "v" + utils.GetVersion(),
		Flags:   Flags(),
		Action:  action,
		Authors: []*cli.Author{
			{Name: "gnomegl"},
		},
	}
}
