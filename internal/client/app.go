package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-bot-keeper/internal/adapter"
	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/MKhiriev/go-bot-keeper/models"
)

const usage = `usage: go-bot-keeper-cli [global flags] <command> [flags]

commands:
  login   -login <login> -password <password>
  version
  list
  get     <id>
  create  -homeserver <url> -access-token <token> [client flags]
  update  <id> [-homeserver <url>] [-access-token <token>] [client flags]
  delete  <id>

client flags:
  -displayname <name> -avatar-url <mxc://...>
  -enabled=<bool> -autojoin=<bool> -sync=<bool> -started=<bool>`

type App struct {
	adapter adapter.ManagementAdapter
	out     io.Writer

	logger *logger.Logger
}

func NewApp(adapter adapter.ManagementAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{adapter: adapter, out: out, logger: logger}
}

// Run executes the command named by args[0] with the remaining args as its
// flags and positional arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Msg("running command")

	switch command {
	case "login":
		return a.login(ctx, rest)
	case "version":
		return a.version(ctx)
	case "list":
		return a.list(ctx)
	case "get":
		return a.get(ctx, rest)
	case "create":
		return a.create(ctx, rest)
	case "update":
		return a.update(ctx, rest)
	case "delete":
		return a.delete(ctx, rest)
	case "help", "-h", "-help", "--help":
		a.printUsage()
		return nil
	default:
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) printUsage() {
	fmt.Fprintln(a.out, helpStyle.Render(usage))
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.newFlagSet("login")
	var admin models.Admin
	fs.StringVar(&admin.Login, "login", "", "admin login")
	fs.StringVar(&admin.Password, "password", "", "admin password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := a.adapter.Login(ctx, admin)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	_, err = fmt.Fprintln(a.out, token)
	return err
}

func (a *App) version(ctx context.Context) error {
	v, err := a.adapter.Version(ctx)
	if err != nil {
		return fmt.Errorf("version: %w", err)
	}

	_, err = fmt.Fprintln(a.out, v)
	return err
}

func (a *App) list(ctx context.Context) error {
	clients, err := a.adapter.ListClients(ctx)
	if err != nil {
		return fmt.Errorf("list clients: %w", err)
	}
	return renderClients(a.out, clients)
}

func (a *App) get(ctx context.Context, args []string) error {
	id, _, err := a.splitID(args)
	if err != nil {
		return err
	}

	c, err := a.adapter.GetClient(ctx, id)
	if err != nil {
		return fmt.Errorf("get client: %w", err)
	}
	return renderClient(a.out, c)
}

func (a *App) create(ctx context.Context, args []string) error {
	payload, err := a.parsePayload("create", args)
	if err != nil {
		return err
	}

	c, err := a.adapter.CreateClient(ctx, payload)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return renderClient(a.out, c)
}

func (a *App) update(ctx context.Context, args []string) error {
	id, rest, err := a.splitID(args)
	if err != nil {
		return err
	}

	payload, err := a.parsePayload("update", rest)
	if err != nil {
		return err
	}

	c, err := a.adapter.UpdateClient(ctx, id, payload)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return renderClient(a.out, c)
}

func (a *App) delete(ctx context.Context, args []string) error {
	id, _, err := a.splitID(args)
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteClient(ctx, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "client %s deleted\n", id)
	return err
}

func (a *App) splitID(args []string) (string, []string, error) {
	if len(args) == 0 || args[0] == "" || args[0][0] == '-' {
		return "", nil, ErrMissingClientID
	}
	return args[0], args[1:], nil
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// parsePayload maps explicitly given flags onto a payload. Flags left out
// stay nil so that updates only touch what was asked for.
func (a *App) parsePayload(name string, args []string) (models.ClientPayload, error) {
	fs := a.newFlagSet(name)

	var (
		homeserver, accessToken, displayName, avatarURL string
		enabled, autojoin, sync, started                bool
	)
	fs.StringVar(&homeserver, "homeserver", "", "homeserver base URL")
	fs.StringVar(&accessToken, "access-token", "", "Matrix access token")
	fs.StringVar(&displayName, "displayname", "", "profile display name")
	fs.StringVar(&avatarURL, "avatar-url", "", "profile avatar mxc:// URI")
	fs.BoolVar(&enabled, "enabled", true, "start on service boot")
	fs.BoolVar(&autojoin, "autojoin", true, "accept room invites")
	fs.BoolVar(&sync, "sync", true, "run the sync loop")
	fs.BoolVar(&started, "started", true, "start or stop the live connection")

	if err := fs.Parse(args); err != nil {
		return models.ClientPayload{}, err
	}
	if fs.NArg() > 0 {
		return models.ClientPayload{}, errors.New("unexpected arguments: " + fmt.Sprint(fs.Args()))
	}

	var payload models.ClientPayload
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "homeserver":
			payload.Homeserver = models.StringPtr(homeserver)
		case "access-token":
			payload.AccessToken = models.StringPtr(accessToken)
		case "displayname":
			payload.DisplayName = models.StringPtr(displayName)
		case "avatar-url":
			payload.AvatarURL = models.StringPtr(avatarURL)
		case "enabled":
			payload.Enabled = models.BoolPtr(enabled)
		case "autojoin":
			payload.Autojoin = models.BoolPtr(autojoin)
		case "sync":
			payload.Sync = models.BoolPtr(sync)
		case "started":
			payload.Started = models.BoolPtr(started)
		}
	})

	return payload, nil
}
