/*
File   : lox/cmd/lox/cmd/server.go

The server subcommand, retained from go-mix's main.go `startServer`/
`handleClient` sketch: listen on a TCP port and hand each accepted
connection its own REPL session (its own interpreter, its own history),
so clients never interfere with each other's variables or functions.
*/
package cmd

import (
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/loxlang/lox/internal/repl"
	"github.com/spf13/cobra"
)

var cyanColor = color.New(color.FgCyan)
var redColor = color.New(color.FgRed)

var serverCmd = &cobra.Command{
	Use:   "server <port>",
	Short: "Start a REPL server, one session per TCP connection",
	Args:  cobra.ExactArgs(1),
	RunE:  runServer,
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func runServer(c *cobra.Command, args []string) error {
	port := args[0]
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Failed to start server on port %s: %v\n", port, err)
		ExitCode = exitUsage
		return nil
	}
	defer listener.Close()
	cyanColor.Printf("lox REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "Failed to accept connection: %v\n", err)
			continue
		}
		go handleConn(conn)
	}
}

func handleConn(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	r := repl.New(banner, version, author, line, license, prompt)
	r.EnvJSON = envJSON
	r.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
