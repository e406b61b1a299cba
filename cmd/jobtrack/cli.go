package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayumik/jobtrack/internal/chat"
	"github.com/ayumik/jobtrack/internal/config"
	"github.com/ayumik/jobtrack/internal/errors"
	"github.com/ayumik/jobtrack/internal/kv"
	"github.com/ayumik/jobtrack/internal/ops"
	"github.com/ayumik/jobtrack/internal/repo"
	"github.com/ayumik/jobtrack/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(store kv.Store, cfg *config.Config, baseDir string) *cli.App {
	var r *repo.Repository
	if store != nil {
		r = repo.New(store)
	}

	app := &cli.App{
		Name:    "jobtrack",
		Usage:   "Local job application tracker",
		Version: Version,
		Commands: []*cli.Command{
			addCmd(r),
			listCmd(r),
			showCmd(r),
			updateCmd(r),
			statusCmd(r),
			deleteCmd(r),
			noteCmd(r),
			docCmd(r),
			todoCmd(r),
			calendarCmd(r),
			remindersCmd(r, cfg),
			summaryCmd(r),
			exportCmd(r, baseDir),
			chatCmd(store, cfg),
			webCmd(store, cfg, baseDir),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// addCmd creates the add command.
func addCmd(r *repo.Repository) *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Register a new company",
		ArgsUsage: "<name>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "industry", Aliases: []string{"i"}, Usage: "Industry label", Required: true},
			&cli.StringFlag{Name: "priority", Aliases: []string{"p"}, Value: "B", Usage: "Priority: A|B|C"},
			&cli.StringFlag{Name: "interview", Usage: "Interview date (YYYY-MM-DD)"},
			&cli.StringFlag{Name: "memo", Aliases: []string{"m"}, Usage: "Free-form memo"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("company name is required"))
			}

			output, err := ops.Add(r, ops.AddInput{
				Name:          strings.Join(c.Args().Slice(), " "),
				Industry:      c.String("industry"),
				Priority:      c.String("priority"),
				InterviewDate: c.String("interview"),
				Memo:          c.String("memo"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// listCmd creates the list command.
func listCmd(r *repo.Repository) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List companies",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "Filter by name substring"},
			&cli.StringFlag{Name: "industry", Aliases: []string{"i"}, Usage: "Filter by industry"},
			&cli.StringFlag{Name: "priority", Aliases: []string{"p"}, Usage: "Filter by priority (A|B|C)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.List(r, ops.ListInput{
				Search:   c.String("search"),
				Industry: c.String("industry"),
				Priority: c.String("priority"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// showCmd creates the show command.
func showCmd(r *repo.Repository) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a company by id",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("company id is required"))
			}

			output, err := ops.Fetch(r, c.Args().First())
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// updateCmd creates the update command.
func updateCmd(r *repo.Repository) *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update a company's fields",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "New name"},
			&cli.StringFlag{Name: "industry", Aliases: []string{"i"}, Usage: "New industry"},
			&cli.StringFlag{Name: "priority", Aliases: []string{"p"}, Usage: "New priority (A|B|C)"},
			&cli.StringFlag{Name: "interview", Usage: "New interview date (YYYY-MM-DD, empty clears)"},
			&cli.StringFlag{Name: "memo", Aliases: []string{"m"}, Usage: "New memo"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("company id is required"))
			}

			input := ops.UpdateInput{ID: c.Args().First()}
			if c.IsSet("name") {
				v := c.String("name")
				input.Name = &v
			}
			if c.IsSet("industry") {
				v := c.String("industry")
				input.Industry = &v
			}
			if c.IsSet("priority") {
				v := c.String("priority")
				input.Priority = &v
			}
			if c.IsSet("interview") {
				v := c.String("interview")
				input.InterviewDate = &v
			}
			if c.IsSet("memo") {
				v := c.String("memo")
				input.Memo = &v
			}

			output, err := ops.Update(r, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// statusCmd creates the status command.
func statusCmd(r *repo.Repository) *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Set the selection status (書類選考|一次面接|最終面接|内定)",
		ArgsUsage: "<id> <status>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return outputError(errors.NewInvalidRequest("usage: status <id> <status>"))
			}

			output, err := ops.SetStatus(r, ops.SetStatusInput{
				ID:     c.Args().Get(0),
				Status: c.Args().Get(1),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd(r *repo.Repository) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a company",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("company id is required"))
			}

			output, err := ops.Delete(r, c.Args().First())
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// noteCmd creates the note command group.
func noteCmd(r *repo.Repository) *cli.Command {
	return &cli.Command{
		Name:  "note",
		Usage: "Manage company notes",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a note to a company",
				ArgsUsage: "<company-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Note title", Required: true},
					&cli.StringFlag{Name: "content", Aliases: []string{"c"}, Usage: "Note content"},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return outputError(errors.NewInvalidRequest("company id is required"))
					}

					output, err := ops.AddNote(r, ops.AddNoteInput{
						CompanyID: c.Args().First(),
						Title:     c.String("title"),
						Content:   c.String("content"),
					})
					if err != nil {
						return outputError(err)
					}

					return outputJSON(output)
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a note",
				ArgsUsage: "<company-id> <note-id>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 2 {
						return outputError(errors.NewInvalidRequest("usage: note delete <company-id> <note-id>"))
					}

					output, err := ops.DeleteNote(r, ops.DeleteNoteInput{
						CompanyID: c.Args().Get(0),
						NoteID:    c.Args().Get(1),
					})
					if err != nil {
						return outputError(err)
					}

					return outputJSON(output)
				},
			},
		},
	}
}

// docCmd creates the doc command group.
func docCmd(r *repo.Repository) *cli.Command {
	return &cli.Command{
		Name:  "doc",
		Usage: "Manage company document links",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a document link to a company",
				ArgsUsage: "<company-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Document name", Required: true},
					&cli.StringFlag{Name: "url", Aliases: []string{"u"}, Usage: "Document URL", Required: true},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return outputError(errors.NewInvalidRequest("company id is required"))
					}

					output, err := ops.AddDocument(r, ops.AddDocumentInput{
						CompanyID: c.Args().First(),
						Name:      c.String("name"),
						URL:       c.String("url"),
					})
					if err != nil {
						return outputError(err)
					}

					return outputJSON(output)
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a document link",
				ArgsUsage: "<company-id> <doc-id>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 2 {
						return outputError(errors.NewInvalidRequest("usage: doc delete <company-id> <doc-id>"))
					}

					output, err := ops.DeleteDocument(r, ops.DeleteDocumentInput{
						CompanyID:  c.Args().Get(0),
						DocumentID: c.Args().Get(1),
					})
					if err != nil {
						return outputError(err)
					}

					return outputJSON(output)
				},
			},
		},
	}
}

// todoCmd creates the todo command group.
func todoCmd(r *repo.Repository) *cli.Command {
	return &cli.Command{
		Name:  "todo",
		Usage: "Manage company checklist items",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a checklist item",
				ArgsUsage: "<company-id> <text>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 2 {
						return outputError(errors.NewInvalidRequest("usage: todo add <company-id> <text>"))
					}

					output, err := ops.AddTodo(r, ops.AddTodoInput{
						CompanyID: c.Args().Get(0),
						Text:      strings.Join(c.Args().Slice()[1:], " "),
					})
					if err != nil {
						return outputError(err)
					}

					return outputJSON(output)
				},
			},
			{
				Name:      "toggle",
				Usage:     "Toggle a checklist item's completed flag",
				ArgsUsage: "<company-id> <todo-id>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 2 {
						return outputError(errors.NewInvalidRequest("usage: todo toggle <company-id> <todo-id>"))
					}

					output, err := ops.ToggleTodo(r, ops.ToggleTodoInput{
						CompanyID: c.Args().Get(0),
						TodoID:    c.Args().Get(1),
					})
					if err != nil {
						return outputError(err)
					}

					return outputJSON(output)
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a checklist item",
				ArgsUsage: "<company-id> <todo-id>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 2 {
						return outputError(errors.NewInvalidRequest("usage: todo delete <company-id> <todo-id>"))
					}

					output, err := ops.DeleteTodo(r, ops.DeleteTodoInput{
						CompanyID: c.Args().Get(0),
						TodoID:    c.Args().Get(1),
					})
					if err != nil {
						return outputError(err)
					}

					return outputJSON(output)
				},
			},
		},
	}
}

// calendarCmd creates the calendar command.
func calendarCmd(r *repo.Repository) *cli.Command {
	return &cli.Command{
		Name:  "calendar",
		Usage: "Show the month grid with interview events",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "year", Aliases: []string{"y"}, Usage: "Year (defaults to current)"},
			&cli.IntFlag{Name: "month", Aliases: []string{"m"}, Usage: "Month 1-12 (defaults to current)"},
		},
		Action: func(c *cli.Context) error {
			now := time.Now()
			year := c.Int("year")
			if year == 0 {
				year = now.Year()
			}
			month := c.Int("month")
			if month == 0 {
				month = int(now.Month())
			}

			output, err := ops.Calendar(r, ops.CalendarInput{
				Year:  year,
				Month: month - 1,
				Today: now,
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// remindersCmd creates the reminders command.
func remindersCmd(r *repo.Repository, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "reminders",
		Usage: "Show companies with an interview in the next few days",
		Action: func(c *cli.Context) error {
			output, err := ops.Reminders(r, cfg, time.Now())
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// summaryCmd creates the summary command.
func summaryCmd(r *repo.Repository) *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Show progress aggregates",
		Action: func(c *cli.Context) error {
			output, err := ops.Summary(r)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// exportCmd creates the export command.
func exportCmd(r *repo.Repository, baseDir string) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export all companies to CSV",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"o"}, Usage: "Output file path"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Export(r, ops.ExportInput{
				Path:    c.String("path"),
				BaseDir: baseDir,
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// chatCmd creates the chat command.
func chatCmd(store kv.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "chat",
		Usage:     "Ask the advisor (canned responses), or --clear to wipe history",
		ArgsUsage: "<message>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "clear", Usage: "Clear the chat history"},
			&cli.BoolFlag{Name: "history", Usage: "Print the transcript and exit"},
		},
		Action: func(c *cli.Context) error {
			transcript := chat.NewTranscript(store)

			if c.Bool("clear") {
				session := chat.NewSession(transcript, chat.MockResponder{}, 0)
				if err := session.Clear(); err != nil {
					return outputError(err)
				}
				return outputJSON(map[string]bool{"cleared": true})
			}

			if c.Bool("history") {
				messages, err := transcript.Messages()
				if err != nil {
					return outputError(err)
				}
				return outputJSON(messages)
			}

			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("message is required"))
			}

			delay := chat.DefaultReplyDelay
			if cfg != nil && cfg.ChatReplyDelayMS > 0 {
				delay = time.Duration(cfg.ChatReplyDelayMS) * time.Millisecond
			}

			session := chat.NewSession(transcript, chat.MockResponder{}, delay)
			userMsg, replyCh, err := session.Send(strings.Join(c.Args().Slice(), " "))
			if err != nil {
				return outputError(err)
			}

			reply, ok := <-replyCh
			if !ok {
				return outputError(errors.NewInternal(fmt.Errorf("reply was cancelled")))
			}

			return outputJSON([]chat.Message{userMsg, reply})
		},
	}
}

// webCmd creates the web command.
func webCmd(store kv.Store, cfg *config.Config, baseDir string) *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Serve the local web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Value: 8642, Usage: "Listen port"},
		},
		Action: func(c *cli.Context) error {
			srv := web.NewServer(store, cfg, baseDir, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if tErr, ok := err.(*errors.TrackError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", tErr.Code, tErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
