// Package cli implements the mlbscores subcommands. It is a thin layer: flag
// parsing and dispatch only, with all logic behind the app services.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"mlbscores/internal/app/games"
	"mlbscores/internal/app/players"
	"mlbscores/internal/config"
	"mlbscores/internal/dates"
	"mlbscores/internal/domain"
	"mlbscores/internal/logging"
	"mlbscores/internal/providers/statsapi"
	"mlbscores/internal/render"
	"mlbscores/internal/server"
	"mlbscores/internal/teams"
)

const usage = `Usage: mlbscores <command> [flags]

Commands:
  teams    List all MLB team abbreviations
  games    List games for a date (--team, --date MM/DD/YYYY, --days N)
  live     Live game status for a game ID or team (--date)
  score    Box score for a game ID or team (--date)
  player   Search players by name, or show season stats for a player ID
  serve    Run the read-only HTTP API

Common flags:
  --format text|json   Output format (default: text)
`

type app struct {
	cfg     config.Config
	logger  *slog.Logger
	games   *games.Service
	players *players.Service
	stdout  io.Writer
	stderr  io.Writer
}

// Run executes one subcommand and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "mlbscores",
		Output:  stderr,
	})

	client := statsapi.NewClient(statsapi.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.HTTPTimeout,
		Logger:  logger,
	})
	a := &app{
		cfg:     cfg,
		logger:  logger,
		games:   games.NewService(client, logger),
		players: players.NewService(client, logger),
		stdout:  stdout,
		stderr:  stderr,
	}

	ctx := context.Background()

	var err error
	switch args[0] {
	case "teams":
		err = a.runTeams(args[1:])
	case "games":
		err = a.runGames(ctx, args[1:])
	case "live":
		err = a.runDetail(ctx, args[1:], render.Live)
	case "score":
		err = a.runDetail(ctx, args[1:], render.Score)
	case "player":
		err = a.runPlayer(ctx, args[1:])
	case "serve":
		err = a.runServe(args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	if err != nil {
		if err == flag.ErrHelp {
			return 2
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func (a *app) runTeams(args []string) error {
	fs := flag.NewFlagSet("teams", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	format := fs.String("format", "text", "output format: text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list := teams.All()
	if *format == "json" {
		return render.TeamsJSON(a.stdout, list)
	}
	render.Teams(a.stdout, list)
	return nil
}

func (a *app) runGames(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("games", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	teamQuery := fs.String("team", "", "filter by team abbreviation or name")
	dateFlag := fs.String("date", "", "start date (MM/DD/YYYY, default today)")
	days := fs.Int("days", 1, "number of days to show")
	format := fs.String("format", "text", "output format: text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	start, err := dates.Resolve(*dateFlag)
	if err != nil {
		return err
	}

	var filter *domain.Team
	if *teamQuery != "" {
		team, err := teams.Resolve(*teamQuery)
		if err != nil {
			return err
		}
		filter = &team
	}

	list, err := a.games.ListGames(ctx, start, filter, *days)
	if err != nil {
		return err
	}

	label := dates.FormatAPI(start)
	multiDay := *days > 1
	if multiDay {
		label += " - " + dates.FormatAPI(start.AddDate(0, 0, *days-1))
	}

	if *format == "json" {
		return render.GamesJSON(a.stdout, label, list)
	}
	render.Games(a.stdout, label, list, multiDay)
	return nil
}

func (a *app) runDetail(ctx context.Context, args []string, asText func(io.Writer, domain.GameDetail)) error {
	fs := flag.NewFlagSet("game", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	dateFlag := fs.String("date", "", "date for team lookup (MM/DD/YYYY, default today)")
	format := fs.String("format", "text", "output format: text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected a game ID or team, e.g. %q or %q", "718415", "PHI")
	}

	date, err := dates.Resolve(*dateFlag)
	if err != nil {
		return err
	}

	resolution, err := a.games.ResolveGame(ctx, fs.Arg(0), date)
	if err != nil {
		return err
	}
	if resolution.Doubleheader() {
		fmt.Fprintf(a.stderr, "Note: doubleheader on %s; showing game %d (also: %s). Pass a game ID to pick one.\n",
			dates.FormatAPI(date), resolution.GamePk, joinInts(resolution.Alternates))
	}

	detail, err := a.games.Detail(ctx, resolution.GamePk)
	if err != nil {
		return err
	}

	if *format == "json" {
		return render.DetailJSON(a.stdout, detail)
	}
	asText(a.stdout, detail)
	return nil
}

func (a *app) runPlayer(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("player", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	teamQuery := fs.String("team", "", "narrow search to one team")
	season := fs.Int("season", 0, "season year for stats (default: current)")
	format := fs.String("format", "text", "output format: text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("expected a player name or player ID")
	}

	query := fs.Arg(0)
	if id, err := strconv.Atoi(query); err == nil && id > 0 {
		stats, err := a.players.SeasonStats(ctx, id, *season)
		if err != nil {
			return err
		}
		if *format == "json" {
			return render.PlayerStatsJSON(a.stdout, stats)
		}
		render.PlayerStats(a.stdout, stats)
		return nil
	}

	found, err := a.players.Search(ctx, query, *teamQuery)
	if err != nil {
		return err
	}
	if *format == "json" {
		return render.PlayersJSON(a.stdout, found)
	}
	render.Players(a.stdout, found)
	return nil
}

func (a *app) runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(a.cfg, a.logger).Run(ctx)
}

func joinInts(values []int) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ", "
		}
		out += strconv.Itoa(v)
	}
	return out
}
