// Package docx writes assembled document as WordprocessingML package.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/h2non/filetype"
	fixzip "github.com/hidez8891/zip"
	"go.uber.org/zap"

	"docgen/archive"
	"docgen/config"
	"docgen/document"
)

// Package part names.
const (
	partContentTypes = "[Content_Types].xml"
	partRootRels     = "_rels/.rels"
	partDocument     = "word/document.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
	partStyles       = "word/styles.xml"
	partNumbering    = "word/numbering.xml"
	partCoreProps    = "docProps/core.xml"
	partAppProps     = "docProps/app.xml"
)

// SerializationError is returned when document could not be written to the
// requested destination. Destination is never left partially written.
type SerializationError struct {
	Path string
	Err  error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("unable to save document to %s: %v", e.Path, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// Generate finalizes document and writes it to outputPath replacing any
// existing file. Package is written to a temporary file in the destination
// directory first and moved in place only after it was verified.
func Generate(ctx context.Context, doc *document.Document, outputPath string, cfg *config.DocumentConfig, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	blocks := doc.Finalize()
	log.Info("Generating DOCX", zap.Int("blocks", len(blocks)), zap.String("output", outputPath))

	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &SerializationError{Path: outputPath, Err: fmt.Errorf("unable to create output directory: %w", err)}
	}

	tmpName, err := writePackage(ctx, dir, doc, blocks, cfg)
	if err != nil {
		return &SerializationError{Path: outputPath, Err: err}
	}
	// removing after successful rename fails quietly
	defer os.Remove(tmpName)

	if cfg.FixZip {
		fixedName, err := rewriteWithoutDataDescriptors(dir, tmpName)
		if err != nil {
			return &SerializationError{Path: outputPath, Err: err}
		}
		defer os.Remove(fixedName)
		tmpName = fixedName
	}

	if err := verify(tmpName, log); err != nil {
		return &SerializationError{Path: outputPath, Err: err}
	}

	// temporary files are owner only, give result permissions of a regular
	// new file or keep ones of the file being replaced
	mode := newFileMode()
	if fi, err := os.Stat(outputPath); err == nil {
		log.Debug("Replacing existing file", zap.String("file", outputPath), zap.Stringer("mode", fi.Mode().Perm()))
		mode = fi.Mode().Perm()
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return &SerializationError{Path: outputPath, Err: err}
	}
	if err := os.Rename(tmpName, outputPath); err != nil {
		return &SerializationError{Path: outputPath, Err: err}
	}
	return nil
}

func writePackage(ctx context.Context, dir string, doc *document.Document, blocks []document.Block, cfg *config.DocumentConfig) (name string, err error) {
	f, err := os.CreateTemp(dir, ".docgen-*.docx")
	if err != nil {
		return "", fmt.Errorf("unable to create temporary file: %w", err)
	}
	name = f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(name)
		}
	}()

	zw := zip.NewWriter(f)

	// content types must come first, file type sniffers expect it there
	parts := []struct {
		name  string
		build func() (*etree.Document, error)
	}{
		{partContentTypes, func() (*etree.Document, error) { return contentTypes(), nil }},
		{partRootRels, func() (*etree.Document, error) { return rootRelationships(), nil }},
		{partDocument, func() (*etree.Document, error) { return body(doc, blocks, cfg.PageSize) }},
		{partDocumentRels, func() (*etree.Document, error) { return documentRelationships(), nil }},
		{partStyles, func() (*etree.Document, error) { return styles(doc.Styles(), doc.Meta.Language, blocks) }},
		{partNumbering, func() (*etree.Document, error) { return numbering(), nil }},
		{partCoreProps, func() (*etree.Document, error) { return coreProperties(doc.Meta), nil }},
		{partAppProps, func() (*etree.Document, error) { return appProperties(), nil }},
	}
	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		xml, err := p.build()
		if err != nil {
			return "", fmt.Errorf("unable to prepare %s: %w", p.name, err)
		}
		if err := writeXMLToZip(zw, p.name, xml); err != nil {
			return "", fmt.Errorf("unable to write %s: %w", p.name, err)
		}
	}

	// make sure buffers are flushed before continuing
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("unable to close output archive: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("unable to finalize output file: %w", err)
	}
	return name, nil
}

// rewriteWithoutDataDescriptors copies archive clearing data descriptor flag
// on every entry.
func rewriteWithoutDataDescriptors(dir, from string) (name string, err error) {
	out, err := os.CreateTemp(dir, ".docgen-fixed-*.docx")
	if err != nil {
		return "", fmt.Errorf("unable to create temporary file: %w", err)
	}
	name = out.Name()
	defer func() {
		if err != nil {
			out.Close()
			os.Remove(name)
		}
	}()

	r, err := fixzip.OpenReader(from)
	if err != nil {
		return "", fmt.Errorf("unable to read archive file (%s): %w", from, err)
	}
	defer r.Close()

	w := fixzip.NewWriter(out)
	for _, file := range r.File {
		file.Flags &= ^fixzip.FlagDataDescriptor
		if err := w.CopyFile(file); err != nil {
			return "", fmt.Errorf("unable to copy archive entry %s: %w", file.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("unable to close archive: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("unable to finalize archive: %w", err)
	}
	return name, nil
}

var requiredParts = []string{partContentTypes, partRootRels, partDocument, partDocumentRels, partStyles}

// verify makes sure produced file is a zip archive carrying all the parts
// word processors need to open it.
func verify(name string, log *zap.Logger) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	head := make([]byte, 16*1024)
	n, err := io.ReadFull(f, head)
	f.Close()
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("unable to read produced package: %w", err)
	}
	head = head[:n]

	if !filetype.IsArchive(head) && !filetype.IsDocument(head) {
		return errors.New("produced package is not a zip archive")
	}
	if kind, err := filetype.Match(head); err == nil {
		log.Debug("Produced package", zap.String("mime", kind.MIME.Value), zap.Bool("docx", filetype.Is(head, "docx")))
	}
	if err := archive.Require(name, requiredParts...); err != nil {
		return err
	}

	// main part is the one word processors refuse to open when broken
	data, err := archive.ReadPart(name, partDocument)
	if err != nil {
		return err
	}
	if err := etree.NewDocument().ReadFromBytes(data); err != nil {
		return fmt.Errorf("produced %s is not well formed: %w", partDocument, err)
	}
	return nil
}

func writeXMLToZip(zw *zip.Writer, name string, doc *etree.Document) error {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return err
	}
	return writeDataToZip(zw, name, buf.Bytes())
}

func writeDataToZip(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
