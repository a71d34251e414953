package convert

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"docgen/config"
	"docgen/document"
)

const defaultLanguage = "en-US"

// canonicalLanguage returns BCP 47 tag in canonical form. Configuration is
// validated on load, so failure here only happens with unknown subtags.
func canonicalLanguage(tag string, log *zap.Logger) string {
	t, err := language.Parse(tag)
	if err != nil {
		log.Warn("Unable to parse document language, using default", zap.String("language", tag), zap.Error(err))
		return defaultLanguage
	}
	return t.String()
}

// buildMetadata prepares document properties. Empty templates fall back to
// content meta.
func buildMetadata(values Values, cfg *config.MetainformationConfig, now time.Time) (document.Metadata, error) {
	meta := document.Metadata{
		Title:    values.Title,
		Subject:  values.Subtitle,
		Creator:  strings.Join(values.Authors, ", "),
		Language: values.Language,
		Created:  now.UTC(),
	}
	if values.Version != "" {
		meta.Description = fmt.Sprintf("Version %s", values.Version)
	}

	var err error
	if cfg.TitleTemplate != "" {
		if meta.Title, err = expandTemplate(config.MetaTitleTemplateFieldName, cfg.TitleTemplate, values); err != nil {
			return meta, err
		}
	}
	if cfg.CreatorTemplate != "" {
		if meta.Creator, err = expandTemplate(config.MetaCreatorTemplateFieldName, cfg.CreatorTemplate, values); err != nil {
			return meta, err
		}
	}

	meta.Identifier = cfg.Identifier
	if meta.Identifier == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return meta, fmt.Errorf("unable to generate document identifier: %w", err)
		}
		meta.Identifier = id.String()
	}
	return meta, nil
}
