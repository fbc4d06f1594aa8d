// Command questions manages the question bank from the command line.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	questionservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/application"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability"
	"github.com/Black-And-White-Club/budtender-trivia/config"
	"github.com/Black-And-White-Club/budtender-trivia/db/bundb"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "questions",
		Usage: "import, export and seed trivia questions",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the configuration file"},
		},
		Commands: []*cli.Command{
			{
				Name:      "import",
				Usage:     "import questions from an xlsx file",
				ArgsUsage: "<file.xlsx>",
				Action:    withService(importAction),
			},
			{
				Name:      "export",
				Usage:     "export every question to an xlsx file",
				ArgsUsage: "<file.xlsx>",
				Action:    withService(exportAction),
			},
			{
				Name:  "seed",
				Usage: "insert generated questions for local development",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "count", Value: 50, Usage: "number of questions"},
					&cli.Uint64Flag{Name: "seed", Value: 0, Usage: "random seed, 0 picks one"},
				},
				Action: seedAction,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

type serviceAction func(c *cli.Context, svc questionservice.Service) error

func withService(action serviceAction) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, db, err := openDB(c)
		if err != nil {
			return err
		}
		defer db.Close()

		obs, err := observability.New(os.Stderr, observability.Config{
			Environment: cfg.Observability.Environment,
			LogLevel:    cfg.Observability.LogLevel,
		})
		if err != nil {
			return err
		}
		svc, err := questionservice.NewQuestionService(db.QuestionDB, obs.Logger, obs.Metrics, obs.Tracer("questions"), db.GetDB(), 0)
		if err != nil {
			return err
		}
		return action(c, svc)
	}
}

func openDB(c *cli.Context) (*config.Config, *bundb.DBService, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	db, err := bundb.NewBunDBService(c.Context, cfg.Postgres)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func importAction(c *cli.Context, svc questionservice.Service) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("missing xlsx file", 2)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	report, err := svc.ImportSpreadsheet(c.Context, bytes.NewReader(data))
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d questions from %s\n", report.Imported, path)
	for _, skipped := range report.Skipped {
		fmt.Printf("  skipped line %d: %s\n", skipped.Line, skipped.Reason)
	}
	return nil
}

func exportAction(c *cli.Context, svc questionservice.Service) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("missing output file", 2)
	}
	data, err := svc.ExportSpreadsheet(c.Context)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Exported questions to %s\n", path)
	return nil
}

func seedAction(c *cli.Context) error {
	_, db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	faker := gofakeit.New(c.Uint64("seed"))
	questions := generateQuestions(faker, c.Int("count"))
	if err := db.QuestionDB.InsertMany(c.Context, nil, questions); err != nil {
		return err
	}
	fmt.Printf("Seeded %d questions\n", len(questions))
	return nil
}
