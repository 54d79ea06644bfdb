// Command kanctl is a small command-line client for the KanMind server.
// It covers the full REST surface and prints server responses as JSON,
// which makes it handy for smoke testing a running instance.
//
// Usage:
//
//	kanctl -a http://localhost:8000 register "Alice Smith" alice@example.com s3cret
//	kanctl -t <token> boards
//	kanctl -t <token> board 10
//	kanctl -t <token> comments 30
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/StephEngl/KanMind/internal/adapter"
	"github.com/StephEngl/KanMind/internal/utils"
	"github.com/StephEngl/KanMind/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	address := flag.String("a", "http://localhost:8000", "server base URL")
	token := flag.String("t", "", "authentication token")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	version := flag.Bool("version", false, "print build info and exit")
	flag.Parse()

	if *version {
		printBuildInfo()
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "no command given")
		usage()
		os.Exit(2)
	}

	api := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: *address,
		Timeout: *timeout,
	})
	api.SetToken(*token)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, api, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "kanctl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	command, rest := args[0], args[1:]

	switch command {
	case "register":
		if len(rest) != 3 {
			return fmt.Errorf("usage: register <fullname> <email> <password>")
		}
		auth, err := api.Register(ctx, models.RegistrationRequest{
			Fullname:         rest[0],
			Email:            rest[1],
			Password:         rest[2],
			RepeatedPassword: rest[2],
		})
		if err != nil {
			return err
		}
		return printJSON(auth)

	case "login":
		if len(rest) != 2 {
			return fmt.Errorf("usage: login <email> <password>")
		}
		auth, err := api.Login(ctx, models.LoginRequest{Email: rest[0], Password: rest[1]})
		if err != nil {
			return err
		}
		return printJSON(auth)

	case "email-check":
		if len(rest) != 1 {
			return fmt.Errorf("usage: email-check <email>")
		}
		info, err := api.CheckEmail(ctx, rest[0])
		if err != nil {
			return err
		}
		return printJSON(info)

	case "whoami":
		// the user ID travels in the token subject, no round trip needed
		userID, err := utils.ParseUserIDFromJWT(api.Token())
		if err != nil {
			return fmt.Errorf("cannot read user from token: %w", err)
		}
		return printJSON(map[string]int64{"id": userID})

	case "boards":
		boards, err := api.ListBoards(ctx)
		if err != nil {
			return err
		}
		return printJSON(boards)

	case "board":
		if len(rest) != 1 {
			return fmt.Errorf("usage: board <id>")
		}
		boardID, err := parseID(rest[0])
		if err != nil {
			return err
		}
		board, err := api.GetBoard(ctx, boardID)
		if err != nil {
			return err
		}
		return printJSON(board)

	case "board-create":
		if len(rest) < 1 {
			return fmt.Errorf("usage: board-create <title> [member-id ...]")
		}
		members, err := parseIDs(rest[1:])
		if err != nil {
			return err
		}
		board, err := api.CreateBoard(ctx, models.BoardCreateRequest{Title: rest[0], Members: members})
		if err != nil {
			return err
		}
		return printJSON(board)

	case "board-rename":
		if len(rest) != 2 {
			return fmt.Errorf("usage: board-rename <id> <title>")
		}
		boardID, err := parseID(rest[0])
		if err != nil {
			return err
		}
		board, err := api.UpdateBoard(ctx, boardID, models.BoardUpdateRequest{Title: &rest[1]})
		if err != nil {
			return err
		}
		return printJSON(board)

	case "board-delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: board-delete <id>")
		}
		boardID, err := parseID(rest[0])
		if err != nil {
			return err
		}
		return api.DeleteBoard(ctx, boardID)

	case "task-create":
		if len(rest) != 4 {
			return fmt.Errorf("usage: task-create <board-id> <title> <status> <priority>")
		}
		boardID, err := parseID(rest[0])
		if err != nil {
			return err
		}
		task, err := api.CreateTask(ctx, models.TaskCreateRequest{
			Board:    boardID,
			Title:    rest[1],
			Status:   rest[2],
			Priority: rest[3],
		})
		if err != nil {
			return err
		}
		return printJSON(task)

	case "assigned":
		tasks, err := api.AssignedTasks(ctx)
		if err != nil {
			return err
		}
		return printJSON(tasks)

	case "reviewing":
		tasks, err := api.ReviewingTasks(ctx)
		if err != nil {
			return err
		}
		return printJSON(tasks)

	case "task-status":
		if len(rest) != 2 {
			return fmt.Errorf("usage: task-status <id> <status>")
		}
		taskID, err := parseID(rest[0])
		if err != nil {
			return err
		}
		task, err := api.UpdateTask(ctx, taskID, models.TaskUpdateRequest{Status: &rest[1]})
		if err != nil {
			return err
		}
		return printJSON(task)

	case "task-assign":
		if len(rest) != 2 {
			return fmt.Errorf("usage: task-assign <id> <user-id|none>")
		}
		taskID, err := parseID(rest[0])
		if err != nil {
			return err
		}
		assignee := models.OptNull[int64]()
		if rest[1] != "none" {
			userID, err := parseID(rest[1])
			if err != nil {
				return err
			}
			assignee = models.Opt(userID)
		}
		task, err := api.UpdateTask(ctx, taskID, models.TaskUpdateRequest{AssigneeID: assignee})
		if err != nil {
			return err
		}
		return printJSON(task)

	case "task-delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: task-delete <id>")
		}
		taskID, err := parseID(rest[0])
		if err != nil {
			return err
		}
		return api.DeleteTask(ctx, taskID)

	case "comments":
		if len(rest) != 1 {
			return fmt.Errorf("usage: comments <task-id>")
		}
		taskID, err := parseID(rest[0])
		if err != nil {
			return err
		}
		comments, err := api.ListComments(ctx, taskID)
		if err != nil {
			return err
		}
		return printJSON(comments)

	case "comment-add":
		if len(rest) != 2 {
			return fmt.Errorf("usage: comment-add <task-id> <content>")
		}
		taskID, err := parseID(rest[0])
		if err != nil {
			return err
		}
		comment, err := api.CreateComment(ctx, taskID, models.CommentCreateRequest{Content: rest[1]})
		if err != nil {
			return err
		}
		return printJSON(comment)

	case "comment-delete":
		if len(rest) != 2 {
			return fmt.Errorf("usage: comment-delete <task-id> <comment-id>")
		}
		taskID, err := parseID(rest[0])
		if err != nil {
			return err
		}
		commentID, err := parseID(rest[1])
		if err != nil {
			return err
		}
		return api.DeleteComment(ctx, taskID, commentID)

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func usage() {
	fmt.Fprintln(os.Stderr, `commands:
  register <fullname> <email> <password>
  login <email> <password>
  email-check <email> | whoami
  boards | board <id> | board-create <title> [member-id ...]
  board-rename <id> <title> | board-delete <id>
  task-create <board-id> <title> <status> <priority>
  assigned | reviewing | task-status <id> <status> | task-assign <id> <user-id|none> | task-delete <id>
  comments <task-id> | comment-add <task-id> <content> | comment-delete <task-id> <comment-id>`)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
