package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/websocket"
)

type frame struct {
	Type            string `json:"type"`
	Message         string `json:"message"`
	Recommendations []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		MatchScore  int    `json:"matchScore"`
	} `json:"recommendations"`
	Skills []string `json:"skills"`
}

func main() {
	server := flag.String("server", "ws://localhost:3001/ws", "Jobscout WebSocket URL")
	api := flag.String("api", "http://localhost:3001", "Jobscout HTTP API URL")
	flag.Parse()

	fmt.Println("Jobscout CLI Chat")
	fmt.Printf("Server: %s\n", *server)
	fmt.Println("Type 'exit' or 'quit' to leave.")
	fmt.Println("Commands: /reset, /catalog")
	fmt.Println("---")

	conn, _, err := websocket.DefaultDialer.Dial(*server, nil)
	if err != nil {
		printError("Failed to connect: %v", err)
		os.Exit(1)
	}
	defer conn.Close()

	// Replies print from a background reader so the prompt stays free.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var f frame
			if err := conn.ReadJSON(&f); err != nil {
				return
			}
			printFrame(&f)
			fmt.Print("\n> ")
		}
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			fmt.Print("> ")
			continue
		}
		if input == "exit" || input == "quit" {
			fmt.Println("Bye!")
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
		if input == "/catalog" {
			fetchCatalog(*api)
			fmt.Print("> ")
			continue
		}

		var payload map[string]string
		if input == "/reset" {
			payload = map[string]string{"type": "reset"}
		} else {
			payload = map[string]string{"type": "user_message", "content": input}
		}
		if err := conn.WriteJSON(payload); err != nil {
			printError("Send failed: %v", err)
			return
		}

		select {
		case <-done:
			printError("Connection closed by server")
			return
		default:
		}
	}
}

func printFrame(f *frame) {
	if f.Type == "error" {
		printError("%s", f.Message)
		return
	}
	fmt.Printf("\n\033[36m%s\033[0m\n", f.Message)
	for _, rec := range f.Recommendations {
		fmt.Printf("  • %s (%d%% match)\n    %s\n", rec.Title, rec.MatchScore, rec.Description)
	}
	if len(f.Skills) > 0 {
		fmt.Printf("  Skills so far: %s\n", strings.Join(f.Skills, ", "))
	}
}

func fetchCatalog(api string) {
	resp, err := http.Get(api + "/api/catalog")
	if err != nil {
		printError("Failed to fetch catalog: %v", err)
		return
	}
	defer resp.Body.Close()

	var roles []struct {
		Name   string   `json:"name"`
		Skills []string `json:"skills"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&roles); err != nil {
		printError("Failed to parse catalog: %v", err)
		return
	}
	fmt.Println("Known roles:")
	for _, r := range roles {
		fmt.Printf("  %s: %s\n", r.Name, strings.Join(r.Skills, ", "))
	}
}

func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "\033[31m"+format+"\033[0m\n", args...)
}
