package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/docdex/docdex"
	"github.com/docdex/docdex/ai/mock"
	"github.com/docdex/docdex/core"
	"github.com/docdex/docdex/ingest"
)

// Sample documents for demos and manual testing. The mock provider derives
// metadata from the text itself, so no model service is needed.
var samples = []struct {
	fileName string
	text     string
}{
	{"passport-john-doe.txt", "Passport of John Doe, issued by the Kingdom of Denmark. Valid until 2031. Travel document number P1234567."},
	{"passport-jane-smith.txt", "Passport of Jane Smith, issued by the Federal Republic of Germany. Valid until 2029. Travel document number C7654321."},
	{"visa-john-doe.txt", "Visa for John Doe, short stay, issued in Copenhagen, Denmark. Single entry, expires 2027."},
	{"invoice-acme-march.txt", "Invoice from Acme Corporation for consulting services, March. Amount due 2400 EUR, payable within 30 days."},
	{"invoice-acme-april.txt", "Invoice from Acme Corporation for consulting services, April. Amount due 1800 EUR, payable within 30 days."},
	{"insurance-home.txt", "Insurance policy for the property at 12 Maple Street. Covers fire, water damage, and theft. Renewed annually."},
	{"contract-lease.txt", "Lease contract between John Doe and Hillside Properties for the apartment at 4 Oak Avenue. Term of two years."},
	{"certificate-birth.txt", "Certificate of birth for Jane Smith, registered in Hamburg, Germany."},
	{"receipt-laptop.txt", "Receipt for one laptop computer purchased from TechStore. Warranty period of 24 months."},
	{"statement-bank.txt", "Bank statement for account ending 4821, covering the previous quarter. Closing balance 5230 EUR."},
}

var (
	dbPath       = flag.String("db", "./docdex_db", "path to BadgerDB database directory")
	seedFileName = flag.String("seed-file", "", "optional file with one document text per line")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	flag.Parse()

	db, err := docdex.NewDatabase(*dbPath, docdex.WithAIProvider(mock.NewMockProvider()))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	processed := make(chan core.ID, 64)
	pipeline, err := db.NewIngestPipeline(ingest.WithProcessedHook(func(id core.ID) {
		processed <- id
	}))
	if err != nil {
		panic(err)
	}
	defer pipeline.Release()

	ctx := context.Background()
	submitted := 0

	if *seedFileName != "" {
		submitted, err = seedFromFile(ctx, pipeline, *seedFileName)
		if err != nil {
			panic(err)
		}
	} else {
		for _, sample := range samples {
			if _, err := pipeline.Submit(ctx, sample.fileName, sample.text, time.Now()); err != nil {
				panic(err)
			}
			submitted++
		}
	}

	for done := 0; done < submitted; done++ {
		select {
		case <-processed:
		case <-time.After(time.Minute):
			panic("timed out waiting for document processing")
		}
	}
	fmt.Printf("seeded %d documents\n", submitted)
}

// seedFromFile submits one document per non-empty line.
func seedFromFile(ctx context.Context, pipeline *ingest.Pipeline, fileName string) (int, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	submitted := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		name := fmt.Sprintf("seed-%03d.txt", submitted+1)
		if _, err := pipeline.Submit(ctx, name, line, time.Now()); err != nil {
			return submitted, err
		}
		submitted++
	}
	return submitted, scanner.Err()
}
