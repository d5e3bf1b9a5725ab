package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/arcshell/arcshell/internal/domain/shell"
	"github.com/arcshell/arcshell/internal/domain/vfs"
	"github.com/arcshell/arcshell/internal/infrastructure/archive"
	"github.com/arcshell/arcshell/internal/infrastructure/config"
)

func main() {
	manifestPath := flag.String("config", "arcshell.yaml", "Archive manifest (YAML or TOML)")
	flag.Parse()

	if err := run(*manifestPath, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("arcsh: %v", err)
	}
}

// run drives one interactive session from manifest load to exit. The
// archive handle is released on every return path, including exit from
// a startup script.
func run(manifestPath string, in io.Reader, out io.Writer) error {
	manifest, err := config.LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	source, err := archive.Open(manifest.Archive)
	if err != nil {
		return err
	}
	defer source.Close()

	entries, err := source.Snapshot()
	if err != nil {
		return err
	}
	engine := shell.New(vfs.Build(entries))

	fmt.Fprintf(out, "Hello %s!\n", manifest.DisplayName())

	if manifest.StartupScript != "" {
		exited, err := runStartup(engine, manifest.StartupScript, out)
		if err != nil {
			return err
		}
		if exited {
			return nil
		}
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, engine.Prompt())
		if !scanner.Scan() {
			break
		}
		res := engine.Execute(scanner.Text())
		if text := res.Text(); text != "" {
			fmt.Fprintln(out, text)
		}
		if res.Exit {
			break
		}
	}
	return scanner.Err()
}

// runStartup replays the script's lines through the engine, echoing
// each result like interactive output. It reports whether a script
// line ended the session.
func runStartup(engine *shell.Engine, path string, out io.Writer) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("open startup script: %w", err)
	}
	defer f.Close()

	results, err := shell.RunScript(engine, f)
	exited := false
	for _, res := range results {
		if text := res.Text(); text != "" {
			fmt.Fprintln(out, text)
		}
		if res.Exit {
			exited = true
		}
	}
	return exited, err
}
