package save

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
)

// ErrNoGame is returned when a document has no game element under its root.
var ErrNoGame = errors.New("document has no game element")

// Load parses the save document at path.
func Load(path string) (*etree.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a save document from r. Read does not close r.
func Read(r io.Reader) (*etree.Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return doc, nil
}

// Game returns the game element of a parsed document.
func Game(doc *etree.Document) (*etree.Element, error) {
	root := doc.Root()
	if root == nil {
		return nil, ErrNoGame
	}
	game := root.SelectElement("game")
	if game == nil {
		return nil, ErrNoGame
	}
	return game, nil
}
