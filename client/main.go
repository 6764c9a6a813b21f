package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"

	"github.com/gorilla/websocket"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "planes",
		Usage: "terminal client for the planes table server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: "localhost:8080",
				Usage: "http service address",
			},
			&cli.StringFlag{
				Name:  "path",
				Value: "/ws",
				Usage: "websocket endpoint",
			},
		},
		Action: run,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	u := url.URL{Scheme: "ws", Host: cmd.String("addr"), Path: cmd.String("path")}
	fmt.Printf("connecting to %s\n", u.String())

	c, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer c.Close()

	client := &Client{
		conn: c,
		out:  os.Stdout,
	}
	done := make(chan struct{}, 2)

	go readLoop(done, client)
	go writeLoop(done, client, os.Stdin)

	select {
	case <-done:
	case <-ctx.Done():
		_ = client.close()
	}
	return nil
}
