// Command sanboard applies algebraic moves to a position and prints,
// evaluates, renders or stores the result.
//
// Usage:
//
//	sanboard -moves "e4 e5 Nf3" -score -svg board.svg
//	sanboard -save ruy -moves "e4 e5 Nf3 Nc6 Bb5"
//	sanboard -load ruy -png board.png
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dferris/sanboard/board"
	"github.com/dferris/sanboard/eval"
	"github.com/dferris/sanboard/render"
	"github.com/dferris/sanboard/storage"
)

var (
	dbDir    = flag.String("db", "", "snapshot database directory (default ~/.sanboard)")
	loadName = flag.String("load", "", "start from the named snapshot instead of the initial position")
	moves    = flag.String("moves", "", "space-separated algebraic moves to apply")
	saveName = flag.String("save", "", "save the resulting position under this name")
	svgOut   = flag.String("svg", "", "write the position as SVG to this file")
	pngOut   = flag.String("png", "", "write the position as PNG to this file")
	list     = flag.Bool("list", false, "list stored snapshots and exit")
	score    = flag.Bool("score", false, "print the Shannon evaluation")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run does the actual work so that deferred cleanup (the badger lock in
// particular) still happens on error exits.
func run() error {
	var store *storage.Store
	if *loadName != "" || *saveName != "" || *list {
		dir, err := databaseDir()
		if err != nil {
			return err
		}
		store, err = storage.Open(dir)
		if err != nil {
			return fmt.Errorf("open snapshot database: %w", err)
		}
		defer store.Close()
	}

	if *list {
		names, err := store.Names()
		if err != nil {
			return fmt.Errorf("list snapshots: %w", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	pos := board.NewGame()
	if *loadName != "" {
		var err error
		pos, err = store.Load(*loadName)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
	}

	for _, mv := range strings.Fields(*moves) {
		if err := pos.ApplyNotation(mv); err != nil {
			return err
		}
	}

	fmt.Print(pos)
	fmt.Printf("%v to move\n", pos.SideToMove())
	if c, ok := pos.CheckedColor(); ok {
		fmt.Printf("%v is in check\n", c)
	}
	if *score {
		fmt.Printf("score: %+.1f\n", eval.Score(pos))
	}

	renderer := render.New(render.DefaultStyle())
	if *svgOut != "" {
		f, err := os.Create(*svgOut)
		if err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		renderer.WriteSVG(f, pos)
		if err := f.Close(); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
	}
	if *pngOut != "" {
		img, err := renderer.Image(pos)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		f, err := os.Create(*pngOut)
		if err != nil {
			return fmt.Errorf("write png: %w", err)
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return fmt.Errorf("write png: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
	}

	if *saveName != "" {
		if err := store.Save(*saveName, pos); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
	}
	return nil
}

// databaseDir resolves the snapshot database location: the -db flag if
// given, otherwise ~/.sanboard.
func databaseDir() (string, error) {
	if *dbDir != "" {
		return *dbDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".sanboard"), nil
}
