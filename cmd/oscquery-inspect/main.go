// Command oscquery-inspect is an interactive browser for a remote
// OSCQuery namespace.
//
// Usage:
//
//	oscquery-inspect [flags]
//
// Flags:
//
//	-host string  Base URL of the OSCQuery host (default "http://localhost:8080")
//
// Commands inside the shell:
//
//	ls [path]      - List children of a container
//	cd <path>      - Change the current address
//	get [path]     - Show the full node as JSON
//	value [path]   - Show the current value
//	type [path]    - Show the type tag string
//	hostinfo       - Show the HOST_INFO descriptor
//	help           - Show command help
//	exit           - Leave the shell
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/chzyer/readline"
)

func main() {
	host := flag.String("host", "http://localhost:8080", "Base URL of the OSCQuery host")
	flag.Parse()

	client := NewClient(*host)

	// Probe the host before entering the shell.
	info, err := client.HostInfo()
	if err != nil {
		log.Printf("Warning: no HOST_INFO from %s: %v", *host, err)
	} else {
		fmt.Printf("Connected to %q (OSC %s:%d via %s)\n",
			info.Name, info.OSCIP, info.OSCPort, info.OSCTransport)
	}

	shell, err := newShell(client)
	if err != nil {
		log.Fatalf("Failed to start shell: %v", err)
	}
	defer shell.Close()

	shell.Run()
}

// shell is the interactive command loop.
type shell struct {
	client *Client
	rl     *readline.Instance
	cwd    string
}

func newShell(client *Client) (*shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "oscquery> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &shell{client: client, rl: rl, cwd: "/"}, nil
}

func (s *shell) Close() { s.rl.Close() }

// Run reads and dispatches commands until exit or EOF.
func (s *shell) Run() {
	for {
		s.rl.SetPrompt(s.cwd + "> ")
		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "ls", "l":
			s.cmdList(args)

		case "cd":
			s.cmdChangeDir(args)

		case "get", "g":
			s.cmdGet(args)

		case "value", "v":
			s.cmdAttr(args, "VALUE")

		case "type", "t":
			s.cmdAttr(args, "TYPE")

		case "hostinfo", "hi":
			s.cmdHostInfo()

		case "quit", "exit", "q":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return

		default:
			fmt.Fprintf(s.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (s *shell) printHelp() {
	fmt.Fprintln(s.rl.Stdout(), `
OSCQuery Inspector Commands:
  ls [path]      - List children of a container
  cd <path>      - Change the current address (.. goes up, / is the root)
  get [path]     - Show the full node as JSON
  value [path]   - Show the current value
  type [path]    - Show the type tag string
  hostinfo       - Show the HOST_INFO descriptor
  help           - Show this help
  exit           - Leave the shell

  Paths are resolved against the current address; absolute paths
  start with '/'.`)
}

// resolve turns a command argument into an absolute address.
func (s *shell) resolve(args []string) string {
	if len(args) == 0 {
		return s.cwd
	}
	target := args[0]
	if !strings.HasPrefix(target, "/") {
		target = s.cwd + "/" + target
	}
	return path.Clean(target)
}

func (s *shell) cmdList(args []string) {
	addr := s.resolve(args)
	node, err := s.client.Node(addr)
	if err != nil {
		s.printError(err)
		return
	}

	names := node.ChildNames()
	if len(names) == 0 {
		fmt.Fprintf(s.rl.Stdout(), "%s has no children\n", addr)
		return
	}
	for _, name := range names {
		child := node.Child(name)
		kind := "param"
		if len(child.ChildNames()) > 0 {
			kind = "container"
		}
		line := fmt.Sprintf("  %-20s %-10s %s", name, kind, child.TypeString())
		if desc := child.Description(); desc != "" {
			line += "  " + desc
		}
		fmt.Fprintln(s.rl.Stdout(), line)
	}
}

func (s *shell) cmdChangeDir(args []string) {
	if len(args) == 0 {
		s.cwd = "/"
		return
	}
	addr := s.resolve(args)
	if _, err := s.client.Node(addr); err != nil {
		s.printError(err)
		return
	}
	s.cwd = addr
}

func (s *shell) cmdGet(args []string) {
	data, err := s.client.Raw(s.resolve(args), "")
	if err != nil {
		s.printError(err)
		return
	}
	s.printJSON(data)
}

func (s *shell) cmdAttr(args []string, attribute string) {
	data, err := s.client.Raw(s.resolve(args), attribute)
	if err != nil {
		s.printError(err)
		return
	}
	s.printJSON(data)
}

func (s *shell) cmdHostInfo() {
	data, err := s.client.Raw("/", "HOST_INFO")
	if err != nil {
		s.printError(err)
		return
	}
	s.printJSON(data)
}

func (s *shell) printJSON(data []byte) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		fmt.Fprintln(s.rl.Stdout(), string(data))
		return
	}
	fmt.Fprintln(s.rl.Stdout(), buf.String())
}

func (s *shell) printError(err error) {
	fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
}
