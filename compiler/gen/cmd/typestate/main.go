// typestate generates staged builders from YAML schema documents.
// Run: go run ./compiler/gen/cmd/typestate -schema ./schemas -target ./builders -pkg example.com/project/builders
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/typestate/compiler/gen"
	"github.com/syssam/typestate/compiler/load"
)

func main() {
	var (
		schemaPath = flag.String("schema", "", "schema YAML file or directory (required)")
		target     = flag.String("target", "", "output directory (required)")
		pkg        = flag.String("pkg", "", "output package import path (required)")
		header     = flag.String("header", "", "comment placed at the top of every generated file")
		features   = flag.String("feature", "", "comma-separated feature flags")
		watch      = flag.Bool("watch", false, "regenerate when schema files change")
	)
	flag.Parse()
	if *schemaPath == "" || *target == "" || *pkg == "" {
		flag.Usage()
		os.Exit(2)
	}

	feats, err := gen.ParseFeatures(*features)
	if err != nil {
		log.Fatal(err)
	}
	opts := []gen.Option{
		gen.WithTarget(*target),
		gen.WithPackage(*pkg),
		gen.WithFeatures(feats...),
	}
	if *header != "" {
		opts = append(opts, gen.WithHeader(*header))
	}

	run := func() error {
		schemas, err := loadSchemas(*schemaPath)
		if err != nil {
			return err
		}
		if err := gen.Generate(schemas, opts...); err != nil {
			return err
		}
		log.Printf("generated %d builder(s) in %s", len(schemas), *target)
		return nil
	}

	if err := run(); err != nil {
		if !*watch {
			log.Fatal(err)
		}
		// In watch mode a broken schema is a state to recover from,
		// not a reason to exit.
		log.Print(err)
	}
	if *watch {
		if err := watchSchemas(*schemaPath, run); err != nil {
			log.Fatal(err)
		}
	}
}

func loadSchemas(path string) ([]*load.Schema, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return load.FromDir(path)
	}
	return load.FromFile(path)
}

// watchSchemas regenerates on every schema change until interrupted.
// Events are debounced so editors that write in multiple syscalls
// trigger one run.
func watchSchemas(path string, run func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()
	dir := path
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		dir = filepath.Dir(path)
	}
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Printf("watching %s", dir)

	const debounce = 100 * time.Millisecond
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			switch strings.ToLower(filepath.Ext(event.Name)) {
			case ".yaml", ".yml":
				timer.Reset(debounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		case <-timer.C:
			if err := run(); err != nil {
				log.Print(err)
			}
		}
	}
}
