// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/neo-f/go-blog/internal/adapter"
	"github.com/neo-f/go-blog/models"
)

var errUsage = errors.New("invalid command usage")

// run dispatches one client command.
func run(ctx context.Context, client adapter.BlogClient, cmd string, args []string) error {
	return runTo(ctx, os.Stdout, client, cmd, args)
}

func runTo(ctx context.Context, out io.Writer, client adapter.BlogClient, cmd string, args []string) error {
	switch cmd {
	case "register", "login":
		return authenticate(ctx, out, client, cmd, args)
	case "posts":
		return listPosts(ctx, out, client, args)
	case "post":
		if len(args) != 1 {
			return errUsage
		}
		post, err := client.GetPost(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(out, post)
	case "publish":
		return publish(ctx, out, client, args)
	case "delete":
		if len(args) != 1 {
			return errUsage
		}
		if err := client.DeletePost(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(out, "deleted %s\n", args[0])
		return nil
	case "version":
		version, err := client.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, version)
		return nil
	default:
		return errUsage
	}
}

func authenticate(ctx context.Context, out io.Writer, client adapter.BlogClient, cmd string, args []string) error {
	var user models.User

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&user.Login, "login", "", "account login")
	fs.StringVar(&user.Password, "password", "", "account password")
	if cmd == "register" {
		fs.StringVar(&user.Name, "name", "", "display name")
	}
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	var (
		auth models.AuthResponse
		err  error
	)
	if cmd == "register" {
		auth, err = client.Register(ctx, user)
	} else {
		auth, err = client.Login(ctx, user)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "export CLIENT_TOKEN=%s\n", auth.Token)
	return nil
}

func listPosts(ctx context.Context, out io.Writer, client adapter.BlogClient, args []string) error {
	var page models.Page

	fs := flag.NewFlagSet("posts", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Uint64Var(&page.Limit, "limit", 0, "page size")
	fs.Uint64Var(&page.Offset, "offset", 0, "items to skip")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	list, err := client.ListPosts(ctx, page)
	if err != nil {
		return err
	}
	return printJSON(out, list)
}

func publish(ctx context.Context, out io.Writer, client adapter.BlogClient, args []string) error {
	var post models.Post

	fs := flag.NewFlagSet("publish", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&post.Title, "title", "", "post title")
	fs.StringVar(&post.Body, "body", "", "post body")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	created, err := client.CreatePost(ctx, post)
	if err != nil {
		return err
	}
	return printJSON(out, created)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
