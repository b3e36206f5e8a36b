package puzzle

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

// Catalogs bundles both pipelines' catalogs.
type Catalogs struct {
	Chess    *ChessCatalog
	Football *FootballCatalog
}

type catalogFile struct {
	Chess    *[]ChessPuzzle    `yaml:"chess"`
	Football *[]FootballPuzzle `yaml:"football"`
}

// Builtin returns the catalogs compiled into the binary.
func Builtin() (Catalogs, error) {
	return NewCatalogs(BuiltinChess(), BuiltinFootball())
}

func NewCatalogs(chessPuzzles []ChessPuzzle, footballPuzzles []FootballPuzzle) (Catalogs, error) {
	cc, err := NewChessCatalog(chessPuzzles)
	if err != nil {
		return Catalogs{}, err
	}
	fc, err := NewFootballCatalog(footballPuzzles)
	if err != nil {
		return Catalogs{}, err
	}
	return Catalogs{Chess: cc, Football: fc}, nil
}

// ReadCatalogs reads a YAML document with "chess" and "football" lists.
// A missing list falls back to the built-in puzzles; an empty one is rejected
// with ErrEmptyCatalog.
func ReadCatalogs(r io.Reader) (Catalogs, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return Catalogs{}, err
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Catalogs{}, fmt.Errorf("parse catalog: %w", err)
	}
	chessPuzzles := BuiltinChess()
	if f.Chess != nil {
		chessPuzzles = *f.Chess
	}
	footballPuzzles := BuiltinFootball()
	if f.Football != nil {
		footballPuzzles = *f.Football
	}
	return NewCatalogs(chessPuzzles, footballPuzzles)
}

func LoadCatalogFile(path string) (Catalogs, error) {
	file, err := os.Open(path)
	if err != nil {
		return Catalogs{}, err
	}
	defer file.Close()
	return ReadCatalogs(file)
}
