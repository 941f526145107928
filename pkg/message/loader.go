package message

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Load reads a document from r and merges its templates into the catalog.
func (c *Catalog) Load(ctx context.Context, parser Parser, r io.Reader) error {
	if parser == nil {
		return fmt.Errorf("parser is nil")
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}

	templates, err := parser.Parse(ctx, content)
	if err != nil {
		return err
	}

	return c.Merge(templates)
}

// LoadFile merges templates from a YAML or JSON file, chosen by extension.
func (c *Catalog) LoadFile(ctx context.Context, path string) error {
	parser := NewParserForFile(path)
	if parser == nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}
	defer f.Close()

	return c.Load(ctx, parser, f)
}

// LoadFS merges templates from a file inside fsys, e.g. an embed.FS.
func (c *Catalog) LoadFS(ctx context.Context, fsys fs.FS, path string) error {
	parser := NewParserForFile(path)
	if parser == nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := fsys.Open(path)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}
	defer f.Close()

	return c.Load(ctx, parser, f)
}
