// Package cli implements the interactive command loop: it reads a command
// token, collects the required fields, invokes the user service and prints
// tabular or confirmation output. It is the single top-level error handler;
// every domain error becomes a one-line message and the loop resumes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/wspjoy2011/sql-repository-example/internal/usecase/user"
)

// command describes one loop command for dispatch and help output.
type command struct {
	name        string
	description string
}

var commands = []command{
	{"create", "Create a new user in the database."},
	{"get", "Retrieve a user's details by their email."},
	{"list", "List all users in the database."},
	{"update", "Update an existing user's details."},
	{"delete", "Delete a user by their email."},
	{"delete_all", "Delete all users from the database."},
	{"help", "Show the list of available commands and their descriptions."},
	{"exit", "Exit the application."},
}

// Loop is the interactive front-end dispatching operator commands to the
// user service.
type Loop struct {
	uc     user.Usecase
	prompt *Prompter
	out    io.Writer
	log    *zap.Logger
}

// NewLoop creates a new command loop reading from in and writing to out.
func NewLoop(uc user.Usecase, in io.Reader, out io.Writer, log *zap.Logger) *Loop {
	return &Loop{
		uc:     uc,
		prompt: NewPrompter(in, out),
		out:    out,
		log:    log,
	}
}

// Run executes the read-prompt-act-print cycle until the operator types
// exit, the input is exhausted, or the context is canceled. All three end
// the loop cleanly.
func (l *Loop) Run(ctx context.Context) error {
	fmt.Fprintln(l.out, "Welcome to users application.")
	fmt.Fprintln(l.out)
	fmt.Fprintln(l.out, "Type 'help' to see the list of available commands.")
	fmt.Fprintln(l.out)

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(l.out, "Exiting")
			return nil
		default:
		}

		fmt.Fprintln(l.out, "Enter command")
		input, err := l.prompt.Line(">>> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(l.out, "Exiting")
				return nil
			}
			return err
		}

		cmd := strings.ToLower(input)
		l.log.Debug("command received", zap.String("command", cmd))

		switch cmd {
		case "":
			continue
		case "exit":
			fmt.Fprintln(l.out, "Exiting")
			return nil
		case "help":
			l.printHelp()
		case "create":
			l.runWithRetry(ctx, l.createUser, "user creation")
		case "get":
			l.runWithRetry(ctx, l.getUser, "user retrieval")
		case "list":
			l.listUsers(ctx)
		case "update":
			l.runWithRetry(ctx, l.updateUser, "update")
		case "delete":
			l.runWithRetry(ctx, l.deleteUser, "deletion")
		case "delete_all":
			l.deleteAllUsers(ctx)
		default:
			fmt.Fprintln(l.out, "Unsupported command! Type 'help' to see the list of commands.")
		}
	}
}

// printHelp lists the available commands with their descriptions.
func (l *Loop) printHelp() {
	fmt.Fprintln(l.out)
	fmt.Fprintln(l.out, "Available commands:")
	for _, cmd := range commands {
		fmt.Fprintf(l.out, "  %s: %s\n", cmd.name, cmd.description)
	}
	fmt.Fprintln(l.out)
}

// runWithRetry executes one command invocation and, on failure, prints the
// error and offers to retry. The retry re-runs the whole command, prompts
// included; declining returns to the command prompt.
func (l *Loop) runWithRetry(ctx context.Context, fn func(context.Context) error, menu string) {
	for {
		err := fn(ctx)
		if err == nil {
			return
		}
		if errors.Is(err, io.EOF) {
			return
		}

		fmt.Fprintf(l.out, "Error: %v\n", err)

		retry, perr := l.prompt.Confirm("Do you want to retry? (yes/no): ")
		if perr != nil || !retry {
			fmt.Fprintf(l.out, "Exiting the %s menu.\n", menu)
			return
		}
	}
}

func (l *Loop) createUser(ctx context.Context) error {
	email, err := l.prompt.Line("Enter email: ")
	if err != nil {
		return err
	}
	name, err := l.prompt.Line("Enter name: ")
	if err != nil {
		return err
	}
	surname, err := l.prompt.Line("Enter surname: ")
	if err != nil {
		return err
	}
	age, err := l.prompt.Int("Enter age: ", "age")
	if err != nil {
		return err
	}

	resp, err := l.uc.CreateUser(ctx, user.CreateUserRequest{
		Email:   email,
		Name:    name,
		Surname: surname,
		Age:     age,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(l.out, "User %s successfully created.\n", resp.User.Email)
	return nil
}

func (l *Loop) getUser(ctx context.Context) error {
	email, err := l.prompt.Line("Enter email: ")
	if err != nil {
		return err
	}

	resp, err := l.uc.GetUser(ctx, user.GetUserRequest{Email: email})
	if err != nil {
		return err
	}

	renderUser(l.out, resp.User)
	return nil
}

func (l *Loop) listUsers(ctx context.Context) {
	resp, err := l.uc.ListUsers(ctx)
	if err != nil {
		fmt.Fprintf(l.out, "Error: %v\n", err)
		return
	}

	renderTable(l.out, resp.Users)
}

func (l *Loop) updateUser(ctx context.Context) error {
	email, err := l.prompt.Line("Enter the email of the user to update: ")
	if err != nil {
		return err
	}

	fmt.Fprintln(l.out, "Enter the updated details:")
	name, err := l.prompt.Line("Enter new name: ")
	if err != nil {
		return err
	}
	surname, err := l.prompt.Line("Enter new surname: ")
	if err != nil {
		return err
	}
	age, err := l.prompt.Int("Enter new age: ", "age")
	if err != nil {
		return err
	}

	resp, err := l.uc.UpdateUser(ctx, user.UpdateUserRequest{
		Email:   email,
		Name:    name,
		Surname: surname,
		Age:     age,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(l.out, "User %s successfully updated.\n", resp.Email)
	return nil
}

func (l *Loop) deleteUser(ctx context.Context) error {
	email, err := l.prompt.Line("Enter email: ")
	if err != nil {
		return err
	}

	resp, err := l.uc.DeleteUser(ctx, user.DeleteUserRequest{Email: email})
	if err != nil {
		return err
	}

	fmt.Fprintf(l.out, "User with email %s successfully deleted.\n", resp.Email)
	return nil
}

func (l *Loop) deleteAllUsers(ctx context.Context) {
	confirmed, err := l.prompt.Confirm(
		"Are you sure you want to delete all users? This action cannot be undone. (yes/no): ")
	if err != nil {
		return
	}
	if !confirmed {
		fmt.Fprintln(l.out, "Action canceled.")
		return
	}

	if _, err := l.uc.DeleteAllUsers(ctx); err != nil {
		fmt.Fprintf(l.out, "Error: %v\n", err)
		return
	}

	fmt.Fprintln(l.out, "All users have been successfully deleted.")
}
