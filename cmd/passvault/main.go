// Command passvault is the command-line front end for the credential store.
// It is a thin presentation layer: it parses arguments, calls the application
// services, and translates their outcomes into messages and exit codes. No
// domain rules live here.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/ericfisherdev/passvault/internal/adapter/driven/jsonfile"
	sqliteadapter "github.com/ericfisherdev/passvault/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/passvault/internal/application"
	"github.com/ericfisherdev/passvault/internal/config"
	"github.com/ericfisherdev/passvault/internal/domain/model"
	"github.com/ericfisherdev/passvault/internal/domain/port/driven"
)

const usage = `usage: passvault <command> [arguments]

Commands:
  list                    list stored credential names
  get <name>              print the secret for a credential
  add <name> <secret>     store a credential (replaces an existing name)
  update <name> <secret>  replace the secret of an existing credential
  delete <name>           remove a credential
  settings show           print the active secret policy
  settings set [flags]    change the policy (-min, -max, -special, -capital, -number)
  settings reset          restore the default policy
  help                    print this message

Configuration (environment):
  PASSVAULT_BACKEND           json (default) or sqlite
  PASSVAULT_CREDENTIALS_PATH  credential file for the json backend (credentials.json)
  PASSVAULT_SETTINGS_PATH     settings file for the json backend (settings.json)
  PASSVAULT_DB_PATH           database file for the sqlite backend (passvault.db)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "passvault: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 || args[0] == "help" {
		fmt.Print(usage)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	credStore, policyStore, closeStores, err := wireStores(cfg)
	if err != nil {
		return err
	}
	defer closeStores()

	ctx := context.Background()

	policies := application.NewPolicyService(policyStore)
	if err := policies.Load(ctx); err != nil {
		return err
	}

	credentials := application.NewCredentialService(credStore, policies)
	if err := credentials.Load(ctx); err != nil {
		return err
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "list":
		names := credentials.List()
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
		return nil

	case "get":
		if len(rest) != 1 {
			return fmt.Errorf("usage: passvault get <name>")
		}
		secret, err := credentials.Get(rest[0])
		if err != nil {
			return err
		}
		fmt.Println(secret)
		return nil

	case "add":
		if len(rest) != 2 {
			return fmt.Errorf("usage: passvault add <name> <secret>")
		}
		if err := credentials.Add(ctx, rest[0], rest[1]); err != nil {
			return err
		}
		fmt.Println("saved")
		return nil

	case "update":
		if len(rest) != 2 {
			return fmt.Errorf("usage: passvault update <name> <secret>")
		}
		if err := credentials.Update(ctx, rest[0], rest[1]); err != nil {
			return err
		}
		fmt.Println("updated")
		return nil

	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: passvault delete <name>")
		}
		if err := credentials.Delete(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil

	case "settings":
		return runSettings(ctx, policies, rest)

	default:
		return fmt.Errorf("unknown command %q (run 'passvault help')", cmd)
	}
}

func runSettings(ctx context.Context, policies *application.PolicyService, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: passvault settings <show|set|reset>")
	}

	switch args[0] {
	case "show":
		printPolicy(policies.Current())
		return nil

	case "set":
		current := policies.Current()

		fs := flag.NewFlagSet("settings set", flag.ContinueOnError)
		minLength := fs.Int("min", current.MinLength, "minimum secret length")
		maxLength := fs.Int("max", current.MaxLength, "maximum secret length")
		special := fs.Bool("special", current.RequireSpecial, "require a special character")
		capital := fs.Bool("capital", current.RequireCapital, "require an upper-case letter")
		number := fs.Bool("number", current.RequireNumber, "require a digit")
		if err := fs.Parse(args[1:]); err != nil {
			// Unparseable numbers are the caller's problem, same as inverted bounds.
			return fmt.Errorf("%v: %w", err, model.ErrInvalidInput)
		}

		next := model.Policy{
			MinLength:      *minLength,
			MaxLength:      *maxLength,
			RequireSpecial: *special,
			RequireCapital: *capital,
			RequireNumber:  *number,
		}
		if err := policies.Save(ctx, next); err != nil {
			return err
		}
		fmt.Println("settings saved")
		return nil

	case "reset":
		if err := policies.Reset(ctx); err != nil {
			// The in-memory reset already took effect; report the failed write.
			return err
		}
		fmt.Println("settings reset to defaults")
		return nil

	default:
		return fmt.Errorf("unknown settings command %q (want show, set, or reset)", args[0])
	}
}

func printPolicy(p model.Policy) {
	fmt.Printf("min_length:      %d\n", p.MinLength)
	fmt.Printf("max_length:      %d\n", p.MaxLength)
	fmt.Printf("require_special: %t\n", p.RequireSpecial)
	fmt.Printf("require_capital: %t\n", p.RequireCapital)
	fmt.Printf("require_number:  %t\n", p.RequireNumber)
}

// wireStores builds the persistence adapters for the configured backend and
// returns a closer for whatever resources they hold.
func wireStores(cfg *config.Config) (driven.CredentialStore, driven.PolicyStore, func(), error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := sqliteadapter.NewDB(cfg.DBPath)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := sqliteadapter.RunMigrations(db.Conn()); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		closer := func() {
			if err := db.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "passvault: %v\n", err)
			}
		}
		return sqliteadapter.NewCredentialRepo(db), sqliteadapter.NewPolicyRepo(db), closer, nil

	default:
		return jsonfile.NewCredentialRepo(cfg.CredentialsPath),
			jsonfile.NewPolicyRepo(cfg.SettingsPath),
			func() {}, nil
	}
}
