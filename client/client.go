package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/StanislavStefanov/Planes/pkg"
	"github.com/StanislavStefanov/Planes/pkg/game"
	"github.com/StanislavStefanov/Planes/pkg/web"
	"github.com/gorilla/websocket"
)

type Connection interface {
	WriteMessage(int, []byte) error
	ReadMessage() (int, []byte, error)
}

// Client writes through write only, the connection allows a single writer at a time.
type Client struct {
	id      string
	role    string
	conn    Connection
	out     io.Writer
	writeMu sync.Mutex
}

func (c *Client) write(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

func (c *Client) close() error {
	return c.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func printMessage(out io.Writer, resp web.Response) {
	fmt.Fprintln(out, "---------------------")
	fmt.Fprintln(out, "Status: ", resp.Action)
	fmt.Fprintln(out, "Message: ", resp.Message)
}

func (c *Client) processResponse(resp web.Response) {
	printMessage(c.out, resp)

	switch resp.Action {
	case pkg.Register:
		c.id, _ = web.StringArg(resp.Args, "id")
		c.role, _ = web.StringArg(resp.Args, "role")
	case pkg.Info:
		if grid, err := web.StringArg(resp.Args, "grid"); err == nil {
			fmt.Fprint(c.out, grid)
			return
		}
		fallthrough
	default:
		if len(resp.Args) != 0 {
			fmt.Fprintln(c.out, "Additional info: ", resp.Args)
		}
	}
}

func readLoop(done chan<- struct{}, client *Client) {
	defer func() {
		done <- struct{}{}
	}()
	for {
		_, bytes, err := client.conn.ReadMessage()
		if err != nil {
			fmt.Fprintln(client.out, "read error:", err)
			return
		}
		var resp web.Response
		if err := json.Unmarshal(bytes, &resp); err != nil {
			fmt.Fprintln(client.out, "malformed response:", err)
			continue
		}
		client.processResponse(resp)
	}
}

func writeLoop(done chan<- struct{}, client *Client, in io.Reader) {
	defer func() {
		done <- struct{}{}
	}()
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintln(client.out, "enter action")
		if !scanner.Scan() {
			return
		}
		request, err := parseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintln(client.out, err)
			continue
		}
		if err := sendRequest(request, client); err != nil {
			fmt.Fprintln(client.out, ">>", err)
		}
		if request.Action == pkg.Exit {
			return
		}
	}
}

func sendRequest(request web.Request, client *Client) error {
	marshal, err := json.Marshal(request)
	if err != nil {
		return err
	}
	return client.write(websocket.BinaryMessage, marshal)
}

var errUsage = errors.New(`usage:
  start
  place <x> <y> <up|down|left|right>
  place <x> <y> <x2> <y2>    head and the field next to it towards the wings
  switch
  shoot <x> <y>
  board [opponent]
  exit`)

//parseCommand turns one input line into a request. A placement can name its orientation
//or give the head followed by the second field of the vessel.
func parseCommand(line string) (web.Request, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return web.Request{}, errUsage
	}
	action, args := strings.ToLower(fields[0]), fields[1:]

	switch action {
	case pkg.Start, pkg.Switch, pkg.Exit:
		if len(args) != 0 {
			return web.Request{}, errUsage
		}
		return web.BuildRequest(action, nil), nil
	case pkg.Board:
		if len(args) == 0 {
			return web.BuildRequest(action, nil), nil
		}
		if len(args) == 1 && args[0] == "opponent" {
			return web.BuildRequest(action, map[string]interface{}{"player": "opponent"}), nil
		}
		return web.Request{}, errUsage
	case pkg.Shoot:
		if len(args) != 2 {
			return web.Request{}, errUsage
		}
		p, err := parsePosition(args[0], args[1])
		if err != nil {
			return web.Request{}, err
		}
		return web.BuildRequest(action, map[string]interface{}{"x": p.X, "y": p.Y}), nil
	case pkg.Place:
		return parsePlacement(args)
	default:
		return web.Request{}, errUsage
	}
}

func parsePlacement(args []string) (web.Request, error) {
	var (
		head        game.Position
		orientation game.Orientation
		err         error
	)
	switch len(args) {
	case 3:
		if head, err = parsePosition(args[0], args[1]); err != nil {
			return web.Request{}, err
		}
		if orientation, err = game.ParseOrientation(args[2]); err != nil {
			return web.Request{}, err
		}
	case 4:
		if head, err = parsePosition(args[0], args[1]); err != nil {
			return web.Request{}, err
		}
		second, err := parsePosition(args[2], args[3])
		if err != nil {
			return web.Request{}, err
		}
		orientation = game.ComputeOrientation(head, second)
	default:
		return web.Request{}, errUsage
	}

	return web.BuildRequest(pkg.Place, map[string]interface{}{
		"x":           head.X,
		"y":           head.Y,
		"orientation": orientation.String(),
	}), nil
}

func parsePosition(x, y string) (game.Position, error) {
	px, err := strconv.Atoi(x)
	if err != nil {
		return game.Position{}, fmt.Errorf("invalid x coordinate %q", x)
	}
	py, err := strconv.Atoi(y)
	if err != nil {
		return game.Position{}, fmt.Errorf("invalid y coordinate %q", y)
	}
	return game.Position{X: px, Y: py}, nil
}
