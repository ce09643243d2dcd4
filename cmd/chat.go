package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ruheeh/waterchatbot/internal/query"
	"github.com/ruheeh/waterchatbot/internal/utils"
	"github.com/spf13/cobra"
)

var chatNoHistory bool

// chatTurn is one question/answer pair in a saved session. Table holds the
// rendered result so transcripts read back complete.
type chatTurn struct {
	Asked       string `json:"asked"`
	Explanation string `json:"explanation"`
	Table       string `json:"table,omitempty"`
	Rows        int    `json:"rows"`
	At          string `json:"at"`
}

type chatSession struct {
	ID      string     `json:"id"`
	Started string     `json:"started"`
	Turns   []chatTurn `json:"turns"`
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive question-and-answer session",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		if cfg.Watch {
			stop, err := store.Watch()
			if err != nil {
				fmt.Fprintf(os.Stderr, "⚠ Warning: file watching disabled: %v\n", err)
			} else {
				defer stop()
			}
		}

		engine := query.New(store)
		session := &chatSession{
			ID:      uuid.NewString(),
			Started: time.Now().Format(time.RFC3339),
		}

		summary, err := store.Summarize()
		if err != nil {
			return err
		}
		fmt.Printf("Loaded %d samples from %d sites (%s).\n", summary.TotalSamples, summary.TotalSites, summary.DateRange)
		fmt.Println(`Ask a question, or type "exit" to quit.`)

		sc := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("\nyou> ")
			if !sc.Scan() {
				break
			}
			q := strings.TrimSpace(sc.Text())
			if q == "" {
				continue
			}
			if q == "exit" || q == "quit" {
				break
			}
			resp := engine.Query(q)
			printResponse(resp)

			rows := 0
			rendered := ""
			if resp.Table != nil {
				rows = resp.Table.Len()
				rendered = resp.Table.Render()
			}
			session.Turns = append(session.Turns, chatTurn{
				Asked:       q,
				Explanation: resp.Explanation,
				Table:       rendered,
				Rows:        rows,
				At:          time.Now().Format(time.RFC3339),
			})
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		if !chatNoHistory && len(session.Turns) > 0 {
			if err := saveSession(session); err != nil {
				fmt.Fprintf(os.Stderr, "⚠ Warning: failed to save history: %v\n", err)
			}
		}
		return nil
	},
}

func saveSession(s *chatSession) error {
	if cfg == nil || cfg.HistoryDir == "" {
		return fmt.Errorf("no history directory configured")
	}
	if err := os.MkdirAll(cfg.HistoryDir, 0o755); err != nil {
		return fmt.Errorf("mkdir history dir: %w", err)
	}
	b, err := utils.PrettyJSON(s)
	if err != nil {
		return err
	}
	path := filepath.Join(cfg.HistoryDir, s.ID+".json")
	if err := utils.SafeWriteFile(path, b); err != nil {
		return err
	}
	fmt.Printf("Session saved to %s\n", path)
	return nil
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().BoolVar(&chatNoHistory, "no-history", false, "do not save the session transcript")
}
