package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/khoahotran/favorite-food/internal/screen"
	"github.com/khoahotran/favorite-food/pkg/client"
	"github.com/khoahotran/favorite-food/pkg/logger"
)

const usage = `usage: favfood [flags] <command>

commands:
  login      sign in and remember the session
  register   create an account and sign in
  home       show and edit your profile
  events     list recent account activity
  logout     sign out and forget the session

flags:
`

type app struct {
	api    *client.Client
	store  *client.FileTokenStore
	msgs   *screen.Catalog
	log    logger.Logger
	prompt *prompter
	out    io.Writer
	limit  *int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("favfood", flag.ContinueOnError)
	fs.SetOutput(stderr)
	apiURL := fs.String("api", envOr("FAVFOOD_API_URL", "http://localhost:8080"), "API base URL")
	lang := fs.String("lang", envOr("FAVFOOD_LANG", posixLocale(os.Getenv("LANG"))), "message language (en, es)")
	defaultTokenPath, err := client.DefaultTokenPath()
	if err != nil {
		defaultTokenPath = ".favfood-session.json"
	}
	tokenPath := fs.String("token-file", defaultTokenPath, "where the session is kept")
	limit := fs.Int("limit", 0, "how many events to list (events command)")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	appLogger := logger.NewZapLogger("cli")
	defer appLogger.Sync()

	a := &app{
		store:  client.NewFileTokenStore(*tokenPath),
		msgs:   screen.NewCatalog(*lang),
		log:    appLogger,
		prompt: newPrompter(stdin, stdout),
		out:    stdout,
		limit:  limit,
	}

	saved, err := a.store.Load()
	if err != nil {
		appLogger.Warn("Ignoring unreadable session file", zap.String("path", *tokenPath), zap.Error(err))
	}
	var opts []client.Option
	if saved.Valid(time.Now()) {
		opts = append(opts, client.WithSession(saved))
	}
	a.api = client.New(*apiURL, opts...)

	ctx := context.Background()
	var cmdErr error
	switch fs.Arg(0) {
	case "login":
		cmdErr = a.login(ctx)
	case "register":
		cmdErr = a.register(ctx)
	case "home":
		cmdErr = a.home(ctx)
	case "events":
		cmdErr = a.events(ctx)
	case "logout":
		cmdErr = a.logout(ctx)
	default:
		fs.Usage()
		return 2
	}

	if cmdErr != nil {
		if !errors.Is(cmdErr, errFailed) {
			fmt.Fprintln(stderr, cmdErr)
		}
		return 1
	}
	return 0
}

// errFailed means the screen already printed why.
var errFailed = errors.New("command failed")

func (a *app) login(ctx context.Context) error {
	s := screen.NewLoginScreen(a.api, a.msgs, a.log)
	var err error
	if s.Email, err = a.prompt.line("Email"); err != nil {
		return err
	}
	if s.Password, err = a.prompt.password("Password"); err != nil {
		return err
	}

	if s.Submit(ctx) != screen.NavHome {
		a.showErrors(s.FormErrors, s.Error)
		return errFailed
	}
	return a.remember()
}

func (a *app) register(ctx context.Context) error {
	s := screen.NewRegisterScreen(a.api, a.msgs, a.log)
	var err error
	if s.Email, err = a.prompt.line("Email"); err != nil {
		return err
	}
	if s.Password, err = a.prompt.password("Password"); err != nil {
		return err
	}
	if s.ConfirmPassword, err = a.prompt.password("Confirm password"); err != nil {
		return err
	}

	if s.Submit(ctx) != screen.NavHome {
		a.showErrors(s.FormErrors, s.Error)
		return errFailed
	}
	return a.remember()
}

func (a *app) home(ctx context.Context) error {
	if a.api.Session().AccessToken == "" {
		return client.ErrNotSignedIn
	}

	s := screen.NewHomeScreen(a.api, a.msgs, a.log)
	s.Load(ctx)
	if s.Error != "" {
		a.showErrors(nil, s.Error)
		return errFailed
	}

	var err error
	if s.GivenName, err = a.prompt.lineDefault("Given name", s.GivenName); err != nil {
		return err
	}
	if s.FamilyName, err = a.prompt.lineDefault("Family name", s.FamilyName); err != nil {
		return err
	}
	if s.FavoriteFood, err = a.prompt.lineDefault("Favorite food", s.FavoriteFood); err != nil {
		return err
	}

	s.Update(ctx)
	if s.Error != "" {
		a.showErrors(s.FormErrors, s.Error)
		return errFailed
	}
	fmt.Fprintln(a.out, s.Notice)
	return nil
}

func (a *app) events(ctx context.Context) error {
	if a.api.Session().AccessToken == "" {
		return client.ErrNotSignedIn
	}
	events, err := a.api.ListEvents(ctx, *a.limit)
	if err != nil {
		return err
	}
	for _, e := range events {
		fmt.Fprintf(a.out, "%s  %s\n", e.OccurredAt.Local().Format(time.DateTime), e.Type)
	}
	return nil
}

func (a *app) logout(ctx context.Context) error {
	if a.api.Session().AccessToken == "" {
		return a.store.Clear()
	}

	s := screen.NewHomeScreen(a.api, a.msgs, a.log)
	if s.SignOut(ctx) != screen.NavLogin {
		a.showErrors(nil, s.Error)
		return errFailed
	}
	return a.store.Clear()
}

func (a *app) remember() error {
	if err := a.store.Save(a.api.Session()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (a *app) showErrors(fields map[string]string, msg string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s: %s\n", name, fields[name])
	}
	if msg != "" {
		fmt.Fprintln(a.out, msg)
	}
}

// posixLocale turns "es_MX.UTF-8" into "es-MX".
func posixLocale(s string) string {
	s, _, _ = strings.Cut(s, ".")
	return strings.ReplaceAll(s, "_", "-")
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
