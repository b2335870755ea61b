package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/lachdavey/ledgerdoc/parser"
	"github.com/lachdavey/ledgerdoc/pdftext"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [path]",
	Short: "Parse a statement or payslip PDF into JSON",
	Long: `Parses a single PDF or every PDF in a directory and prints the
structured result as JSON on stdout. Directory parsing runs one worker per
CPU; documents are independent, so completion order is not guaranteed.`,
	Args: cobra.ExactArgs(1),
	Run:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) {
	path := args[0]
	registry := parser.NewDefaultRegistry()

	info, err := os.Stat(path)
	if err != nil {
		log.Fatalf("error: %v", err)
	}

	if !info.IsDir() {
		result, err := parseFile(registry, path)
		if err != nil {
			log.Fatalf("error: %s: %v", filepath.Base(path), err)
		}
		printJSON(result)
		return
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		log.Fatalf("error: %v", err)
	}

	jobs := make(chan string)
	results := make(chan *parser.Result, len(entries))
	var wg sync.WaitGroup

	for i := 0; i < runtime.NumCPU(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for file := range jobs {
				result, err := parseFile(registry, file)
				if err != nil {
					log.Printf("skipping %s: %v", filepath.Base(file), err)
					continue
				}
				results <- result
			}
		}()
	}

	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		jobs <- filepath.Join(path, e.Name())
	}
	close(jobs)
	wg.Wait()
	close(results)

	parsed := []*parser.Result{}
	for r := range results {
		parsed = append(parsed, r)
	}
	printJSON(parsed)
}

func parseFile(registry *parser.Registry, path string) (*parser.Result, error) {
	text, err := pdftext.Extract(path)
	if err != nil {
		return nil, err
	}
	return parser.ParseDocument(registry, text)
}

func printJSON(v interface{}) {
	out, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	fmt.Println(string(out))
}
