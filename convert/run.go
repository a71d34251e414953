// Package convert implements the build action: configuration, content and
// theme are turned into assembled document which is then serialized.
package convert

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"docgen/content"
	"docgen/convert/docx"
	"docgen/document"
	"docgen/state"
)

// Run is the root command action.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	if cmd.Args().Len() > 0 {
		log.Warn("Malformed command line, unexpected arguments", zap.Strings("ignoring", cmd.Args().Slice()))
	}

	src := cmd.String("content")
	if len(src) == 0 {
		src = env.Cfg.Document.ContentPath
	}

	log.Info("Processing starting", zap.String("content", describeSource(src)))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	outputName, err := process(ctx, src, cmd.String("output"), env, log)
	if err != nil {
		return err
	}
	log.Info("Document saved to " + outputName)
	return nil
}

func describeSource(src string) string {
	if len(src) == 0 {
		return content.EmbeddedSource
	}
	return src
}

// process handles the core build logic independently of CLI framework and
// returns full name of the produced file.
func process(ctx context.Context, src, dst string, env *state.LocalEnv, log *zap.Logger) (string, error) {
	cfg := &env.Cfg.Document

	model, err := content.Load(src)
	if err != nil {
		return "", fmt.Errorf("unable to load content: %w", err)
	}
	if env.Rpt != nil {
		env.Rpt.StoreText("dumps/content.txt", model.String())
	}

	styles, err := buildStyles(cfg.Styles, log)
	if err != nil {
		return "", fmt.Errorf("unable to prepare styles: %w", err)
	}
	if env.Rpt != nil {
		env.Rpt.StoreText("dumps/styles.txt", styles.String())
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	asm := document.NewAssembler(styles, document.TableOptions{Style: cfg.Table.Style, Centered: cfg.Table.Centered})
	if err := content.Populate(asm, model, log); err != nil {
		return "", fmt.Errorf("unable to assemble document: %w", err)
	}
	doc := asm.Document()

	values := buildValues(model, canonicalLanguage(cfg.Language, log))
	if doc.Meta, err = buildMetadata(values, &cfg.Metainformation, time.Now()); err != nil {
		return "", fmt.Errorf("unable to prepare document properties: %w", err)
	}
	log.Debug("Document assembled",
		zap.Int("blocks", doc.Len()),
		zap.Stringers("kinds", doc.Kinds()),
		zap.String("title", doc.Meta.Title),
		zap.String("language", doc.Meta.Language),
		zap.String("identifier", doc.Meta.Identifier))

	outputName, err := filepath.Abs(buildOutputPath(dst, values, env))
	if err != nil {
		return "", fmt.Errorf("unable to resolve output path: %w", err)
	}

	err = docx.Generate(ctx, doc, outputName, cfg, log.Named("docx"))
	if env.Rpt != nil {
		// sequence is dumped after serialization attempt, it is finalized by now
		env.Rpt.StoreText("dumps/document.txt", doc.String())
	}
	if err != nil {
		return "", fmt.Errorf("unable to generate output: %w", err)
	}

	// Store build result for debugging
	if err := env.Rpt.StoreCopy("result"+filepath.Ext(outputName), outputName); err != nil {
		log.Warn("Unable to store result in debug report", zap.Error(err))
	}
	return outputName, nil
}
