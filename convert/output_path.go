package convert

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"docgen/config"
	"docgen/state"
)

const outputExt = ".docx"

// buildOutputPath returns output file path. Explicit destination from the
// command line wins and is only cleaned up. Otherwise configured output path
// is used with file name optionally produced by user-defined template, which
// may contain subdirectories. If requested name segments are transliterated.
func buildOutputPath(dst string, values Values, env *state.LocalEnv) string {
	if dst != "" {
		dir, file := filepath.Split(dst)
		return filepath.Join(dir, makeDefaultFileName(file, env))
	}

	outDir, file := filepath.Split(env.Cfg.Document.OutputPath)
	defaultFile := makeDefaultFileName(file, env)

	if env.Cfg.Document.OutputNameTemplate == "" {
		return filepath.Join(outDir, defaultFile)
	}

	expandedName := expandOutputNameTemplate(values, env)
	if expandedName == "" {
		// fallback to default name if template expansion failed
		return filepath.Join(outDir, defaultFile)
	}
	return assemblePathWithSubdirs(outDir, expandedName, env)
}

func makeDefaultFileName(file string, env *state.LocalEnv) string {
	baseName := strings.TrimSuffix(file, filepath.Ext(file))
	return cleanPathSegment(baseName, env) + outputExt
}

func expandOutputNameTemplate(values Values, env *state.LocalEnv) string {
	expandedName, err := expandTemplate(config.OutputNameTemplateFieldName, env.Cfg.Document.OutputNameTemplate, values)
	if err != nil {
		env.Logger().Warn("Unable to prepare output filename", zap.Error(err))
		return ""
	}
	return strings.TrimSuffix(filepath.FromSlash(expandedName), outputExt)
}

// assemblePathWithSubdirs takes an expanded template name (which may contain
// path separators for subdirectories) and assembles it into a full output path,
// cleaning and transliterating segments as needed
func assemblePathWithSubdirs(outDir, expandedName string, env *state.LocalEnv) string {
	pathSegments := splitPathSegments(expandedName)
	if len(pathSegments) == 0 {
		return filepath.Join(outDir, makeDefaultFileName(filepath.Base(env.Cfg.Document.OutputPath), env))
	}

	fileName := cleanPathSegment(pathSegments[len(pathSegments)-1], env) + outputExt
	dirParts := make([]string, 0, len(pathSegments)+1)
	dirParts = append(dirParts, outDir)

	for _, segment := range pathSegments[:len(pathSegments)-1] {
		dirParts = append(dirParts, cleanPathSegment(segment, env))
	}

	dirParts = append(dirParts, fileName)
	return filepath.Join(dirParts...)
}

// splitPathSegments drops empty, "." and ".." segments so template cannot
// escape output directory.
func splitPathSegments(path string) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); ; head, tail = filepath.Split(head) {
		if tail != "" && tail != "." && tail != ".." {
			segments = slices.Insert(segments, 0, tail)
		}
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" || head == path {
			break
		}
		path = head
	}
	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Document.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
