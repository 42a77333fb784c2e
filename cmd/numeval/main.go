// Command numeval evaluates CJK numerals from the command line.
//
// Arguments are evaluated with the -tag branch (integer by default):
//
//	go run ./cmd/numeval -lang zh -tag integer 三千二百一 一百零五
//
// Without arguments, numeval reads one numeral per line from stdin. Each
// line is "tag<TAB>text", or just "text" when -tag is set:
//
//	printf 'fraction\t三又四分之一\npercent-idiom\t七五折\n' | go run ./cmd/numeval -lang zh
//
// Output is one JSON object per input, in input order. The exit status is 1
// when any input failed to evaluate.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/az-ai-labs/cjknum/culture"
	"github.com/az-ai-labs/cjknum/numeral"
)

const (
	defaultLang    = "zh"
	defaultWorkers = 4
	scannerBufSize = 1 << 16 // 64 KB
)

// line is one numeral to evaluate. err is set when the input line itself
// could not be parsed.
type line struct {
	tag  numeral.Tag
	text string
	err  error
}

// record is the JSON form of one evaluation.
type record struct {
	Text       string      `json:"text"`
	Tag        numeral.Tag `json:"tag"`
	Value      string      `json:"value,omitempty"`
	Resolution string      `json:"resolution,omitempty"`
	Error      string      `json:"error,omitempty"`
}

var errMissingTag = errors.New("numeval: missing tag")

func main() {
	log.SetFlags(0)
	log.SetPrefix("[numeval] ")

	lang := flag.String("lang", defaultLang, "BCP 47 language tag (zh, zh-Hant, ja, ko)")
	tagName := flag.String("tag", "", "evaluation branch for every input: "+tagList())
	workers := flag.Int("workers", defaultWorkers, "number of concurrent evaluators")
	flag.Parse()

	if *workers < 1 {
		log.Fatalf("-workers must be at least 1, got %d", *workers)
	}

	reg, err := culture.Default()
	if err != nil {
		log.Fatalf("building registry: %v", err)
	}
	cfg, err := reg.LookupString(*lang)
	if err != nil {
		log.Fatal(err)
	}

	var fixed *numeral.Tag
	if *tagName != "" {
		tag, err := numeral.ParseTag(*tagName)
		if err != nil {
			log.Fatal(err)
		}
		fixed = &tag
	}

	var lines []line
	if flag.NArg() > 0 {
		lines = argLines(flag.Args(), fixed)
	} else {
		lines, err = readLines(os.Stdin, fixed)
		if err != nil {
			log.Fatalf("reading stdin: %v", err)
		}
	}

	failed, err := run(lines, cfg, *workers, os.Stdout)
	if err != nil {
		log.Fatalf("writing output: %v", err)
	}
	if failed > 0 {
		log.Printf("%d of %d inputs failed", failed, len(lines))
		os.Exit(1)
	}
}

// argLines turns command-line arguments into lines, defaulting to Integer.
func argLines(args []string, fixed *numeral.Tag) []line {
	tag := numeral.Integer
	if fixed != nil {
		tag = *fixed
	}
	lines := make([]line, len(args))
	for i, a := range args {
		lines[i] = line{tag: tag, text: a}
	}
	return lines
}

// readLines reads numerals from r, one per non-blank line.
func readLines(r io.Reader, fixed *numeral.Tag) ([]line, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, scannerBufSize)
	scanner.Buffer(buf, scannerBufSize)

	var lines []line
	for scanner.Scan() {
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, parseLine(text, fixed))
	}
	return lines, scanner.Err()
}

// parseLine splits "tag<TAB>text". With a fixed tag the whole line is text.
func parseLine(s string, fixed *numeral.Tag) line {
	if fixed != nil {
		return line{tag: *fixed, text: s}
	}
	name, text, ok := strings.Cut(s, "\t")
	if !ok {
		return line{text: s, err: fmt.Errorf("%w: %q", errMissingTag, s)}
	}
	tag, err := numeral.ParseTag(name)
	if err != nil {
		return line{text: text, err: err}
	}
	return line{tag: tag, text: text}
}

// run evaluates lines with a bounded worker pool and writes one JSON record
// per line to w in input order. It returns the number of failed lines.
func run(lines []line, cfg *numeral.Config, workers int, w io.Writer) (int, error) {
	records := make([]record, len(lines))

	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, l := range lines {
		wg.Add(1)
		semaphore <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-semaphore }()
			records[i] = evaluate(l, cfg)
		}()
	}

	wg.Wait()

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	failed := 0
	for i, rec := range records {
		if rec.Error != "" {
			failed++
			log.Printf("line %d: %q: %s", i+1, rec.Text, rec.Error)
		}
		if err := enc.Encode(rec); err != nil {
			return failed, err
		}
	}
	return failed, nil
}

func evaluate(l line, cfg *numeral.Config) record {
	rec := record{Text: l.text, Tag: l.tag}
	if l.err != nil {
		rec.Error = l.err.Error()
		return rec
	}
	res, err := numeral.Evaluate(l.text, l.tag, cfg)
	if err != nil {
		rec.Error = err.Error()
		return rec
	}
	rec.Value = res.Value.String()
	rec.Resolution = res.Resolution
	return rec
}

func tagList() string {
	names := make([]string, 0, len(numeral.Tags()))
	for _, t := range numeral.Tags() {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}
