package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"glutools-directory/internal/config"
	"glutools-directory/internal/db"
	"glutools-directory/internal/models"
	"glutools-directory/internal/repository"
	"glutools-directory/internal/security"
	"glutools-directory/internal/seed"

	"github.com/urfave/cli/v3"
)

func main() {
	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}

	root := &cli.Command{
		Name:  "directoryctl",
		Usage: "Maintain the AI tool directory store",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config/app.yaml", Usage: "path to the YAML config file"},
			&cli.StringFlag{Name: "driver", Usage: "store driver (overrides config)"},
			&cli.StringFlag{Name: "dsn", Usage: "store DSN (overrides config)"},
		},
		Commands: []*cli.Command{
			seedCommand(),
			importToolsCommand(),
			subjectsCommand(),
			adminsCommand(),
		},
	}

	if err := root.Run(context.Background(), args); err != nil {
		log.Fatal(err)
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Write default subjects, the super-admin and sample tools where missing",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, store, err := openStore(ctx, c)
			if err != nil {
				return err
			}
			defer store.Close()

			report, err := seed.Run(ctx, store, seed.Options{
				AdminName:     cfg.SeedAdminName,
				AdminEmail:    cfg.SeedAdminEmail,
				AdminPassword: cfg.SeedAdminPassword,
				Hash:          security.HashPassword,
			})
			if err != nil {
				return err
			}
			fmt.Printf("subjects: %s\nadmins:   %s\ntools:    %s\n",
				seeded(report.Subjects), seeded(report.Admins), seeded(report.Tools))
			return nil
		},
	}
}

func importToolsCommand() *cli.Command {
	return &cli.Command{
		Name:  "import-tools",
		Usage: "Add the bundled tool catalog, skipping ids already present",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Usage: "YAML catalog to import instead of the bundled one"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			catalog, err := loadCatalog(c.String("file"))
			if err != nil {
				return err
			}

			_, store, err := openStore(ctx, c)
			if err != nil {
				return err
			}
			defer store.Close()

			added, total, err := repository.NewTools(store).AppendMissing(ctx, catalog)
			if err != nil {
				return err
			}
			fmt.Printf("added %d tools, %d total\n", added, total)
			return nil
		},
	}
}

func subjectsCommand() *cli.Command {
	return &cli.Command{
		Name:  "subjects",
		Usage: "List or add subjects",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Print all subjects",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					_, store, err := openStore(ctx, c)
					if err != nil {
						return err
					}
					defer store.Close()

					subjects, err := repository.NewSubjects(store).List(ctx)
					if err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(subjects)
					}
					for _, s := range subjects {
						fmt.Printf("%-12s %s\n", s.ID, s.Name)
					}
					return nil
				},
			},
			{
				Name:  "add",
				Usage: "Add a subject under a new slug",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true, Usage: "slug, e.g. robotics"},
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "description"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					_, store, err := openStore(ctx, c)
					if err != nil {
						return err
					}
					defer store.Close()

					subject, err := repository.NewSubjects(store).Create(ctx, models.Subject{
						ID:          c.String("id"),
						Name:        c.String("name"),
						Description: c.String("description"),
					})
					if err != nil {
						return err
					}
					return printJSON(subject)
				},
			},
		},
	}
}

func adminsCommand() *cli.Command {
	return &cli.Command{
		Name:  "admins",
		Usage: "Inspect and manage admin accounts",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Print all admins without passwords",
				Action: func(ctx context.Context, c *cli.Command) error {
					_, store, err := openStore(ctx, c)
					if err != nil {
						return err
					}
					defer store.Close()

					admins, err := repository.NewAdmins(store, security.HashPassword).List(ctx)
					if err != nil {
						return err
					}
					return printJSON(models.Profiles(admins))
				},
			},
			{
				Name:  "create",
				Usage: "Create a regular admin account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					_, store, err := openStore(ctx, c)
					if err != nil {
						return err
					}
					defer store.Close()

					admin, err := repository.NewAdmins(store, security.HashPassword).Create(ctx, repository.AdminInput{
						Name:     c.String("name"),
						Email:    c.String("email"),
						Password: c.String("password"),
					})
					if err != nil {
						return err
					}
					return printJSON(admin.Profile())
				},
			},
			{
				Name:  "rehash",
				Usage: "Replace plaintext passwords left by older records with bcrypt hashes",
				Action: func(ctx context.Context, c *cli.Command) error {
					_, store, err := openStore(ctx, c)
					if err != nil {
						return err
					}
					defer store.Close()

					n, err := rehashPasswords(ctx, repository.NewAdmins(store, security.HashPassword))
					if err != nil {
						return err
					}
					fmt.Printf("rehashed %d passwords\n", n)
					return nil
				},
			},
		},
	}
}

func rehashPasswords(ctx context.Context, admins *repository.Admins) (int, error) {
	list, err := admins.List(ctx)
	if err != nil {
		return 0, err
	}

	n := 0
	for i := range list {
		if security.IsHashed(list[i].Password) {
			continue
		}
		hashed, err := security.HashPassword(list[i].Password)
		if err != nil {
			return 0, err
		}
		list[i].Password = hashed
		n++
	}

	if n == 0 {
		return 0, nil
	}
	return n, admins.Save(ctx, list)
}

func openStore(ctx context.Context, c *cli.Command) (*config.Config, db.KeyValueStore, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	if v := c.String("driver"); v != "" {
		cfg.StoreDriver = v
	}
	if v := c.String("dsn"); v != "" {
		cfg.StoreDSN = v
	}

	store, err := db.Open(ctx, cfg.StoreDriver, cfg.StoreDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	return cfg, store, nil
}

func loadCatalog(path string) ([]models.AITool, error) {
	if path == "" {
		return seed.Catalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return seed.ParseCatalog(data)
}

func seeded(wrote bool) string {
	if wrote {
		return "seeded"
	}
	return "already present"
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
