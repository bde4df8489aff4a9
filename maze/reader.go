package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read reads maze rows from r, one row per line. Only line terminators are
// stripped, so leading and trailing open cells survive.
func Read(r io.Reader) ([]string, error) {
	var rows []string
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			rows = append(rows, strings.TrimRight(strings.TrimSuffix(line, "\n"), "\r"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading maze: %w", err)
		}
	}

	// A trailing blank line is an artifact of the file, not an empty row.
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

// Load reads a maze file and builds its grid.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		return nil, err
	}
	return NewGrid(rows)
}
