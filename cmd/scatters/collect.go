package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/scatters"
	"github.com/tsawler/scatters/wordbank"
)

// stopWordsFile is the YAML shape of a custom stop-word list:
//
//	stopwords:
//	  - the
//	  - and
type stopWordsFile struct {
	StopWords []string `yaml:"stopwords"`
}

// newBank builds a word bank, reading a custom stop-word list from
// stopWordsPath when it is non-empty.
func newBank(stopWordsPath string) (*wordbank.Bank, error) {
	if stopWordsPath == "" {
		return wordbank.New(), nil
	}

	data, err := os.ReadFile(stopWordsPath)
	if err != nil {
		return nil, fmt.Errorf("reading stop-word list: %w", err)
	}

	var f stopWordsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing stop-word list: %w", err)
	}

	return wordbank.NewWithStopWords(f.StopWords), nil
}

// collect ingests path (a single document or a directory of documents)
// into a fresh collector. A directory scan skips failing documents with
// a warning; a single-document run fails outright.
func collect(path, stopWordsPath string) (*scatters.Collector, error) {
	bank, err := newBank(stopWordsPath)
	if err != nil {
		return nil, err
	}
	c := scatters.NewCollectorWithBank(bank)

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		if err := c.AddDir(path); err != nil {
			return nil, err
		}
	} else {
		if err := c.AddFile(path); err != nil {
			return nil, err
		}
	}

	if warnings := c.Warnings(); len(warnings) > 0 {
		fmt.Fprintln(os.Stderr, scatters.FormatWarnings(warnings))
	}

	return c, nil
}
