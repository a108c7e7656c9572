// Viewer is an operator tool for the feedback log. It renders the
// append-only CSV as a table and can run a full-text search over the
// message column using an in-memory index.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

// viewerConfig only needs the log location; the viewer never touches the
// rest of the portal's environment contract.
type viewerConfig struct {
	FeedbackLogPath string `env:"FEEDBACK_LOG_PATH,required=true"`
}

func main() {
	searchTerm := flag.String("search", "", "full-text search over feedback messages")
	flag.Parse()

	// 1. Load config
	_ = godotenv.Load()
	var config viewerConfig
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Read the log (read-only; the portal may still be appending)
	rows, err := readFeedbackLog(config.FeedbackLogPath)
	if err != nil {
		log.Fatalf("Failed to read feedback log: %v", err)
	}
	if len(rows) == 0 {
		color.Yellow.Println("No feedback recorded yet")
		return
	}

	if *searchTerm != "" {
		rows, err = searchRows(rows, *searchTerm)
		if err != nil {
			log.Fatalf("Search failed: %v", err)
		}
		color.Cyan.Printf("%d row(s) matching %q\n", len(rows), *searchTerm)
	}

	// 3. Render
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Timestamp", "Name", "Email", "Rating", "Message"})
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()

	color.Green.Printf("%d feedback row(s), average rating %.1f/5\n", len(rows), averageRating(rows))
}

// readFeedbackLog returns the data rows of the CSV, header excluded.
func readFeedbackLog(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) <= 1 {
		return nil, nil
	}
	return records[1:], nil
}

// searchRows builds a transient in-memory index over the message column
// and returns the rows whose message matches the term.
func searchRows(rows [][]string, term string) ([][]string, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, err
	}
	defer writer.Close()

	batch := bluge.NewBatch()
	for i, row := range rows {
		doc := bluge.NewDocument(strconv.Itoa(i)).
			AddField(bluge.NewTextField("message", row[4]))
		batch.Update(doc.ID(), doc)
	}
	if err := writer.Batch(batch); err != nil {
		return nil, err
	}

	reader, err := writer.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	query := bluge.NewMatchQuery(term).SetField("message")
	request := bluge.NewTopNSearch(len(rows), query)

	iter, err := reader.Search(context.Background(), request)
	if err != nil {
		return nil, err
	}

	var matched [][]string
	for {
		match, err := iter.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				if idx, convErr := strconv.Atoi(string(value)); convErr == nil && idx < len(rows) {
					matched = append(matched, rows[idx])
				}
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return matched, nil
}

// averageRating averages the rating column over the rows whose rating
// parses; unparsable rows are excluded from both sum and count.
func averageRating(rows [][]string) float64 {
	sum, counted := 0, 0
	for _, row := range rows {
		rating, err := strconv.Atoi(row[3])
		if err != nil {
			continue
		}
		sum += rating
		counted++
	}
	if counted == 0 {
		return 0
	}
	return float64(sum) / float64(counted)
}
