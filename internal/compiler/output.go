package compiler

import (
	"os"
	"path/filepath"
	"strings"

	"vccd/internal/config"
	"vccd/internal/language"
	"vccd/internal/services"
	"vccd/internal/textutil"
)

const sourcePrefix = "closecaption_"

// outputPath resolves where a compile of sourcePath writes. Without an
// override the configured output directory and pattern are used.
func (s *Service) outputPath(sourcePath, override, lang string) (string, error) {
	name := textutil.ExpandPattern(s.config.Compile.OutputPattern, map[string]string{
		"language": lang,
		"name":     stem(sourcePath),
	})
	if name == "" {
		return "", services.Wrap(services.ErrConfiguration, stageName, "resolve output", "compile.output_pattern expands to an empty name", nil)
	}

	override = strings.TrimSpace(override)
	if override == "" {
		return filepath.Join(s.config.Paths.OutputDir, name), nil
	}

	expanded, err := config.ExpandPath(override)
	if err != nil {
		return "", services.Wrap(services.ErrConfiguration, stageName, "resolve output", override, err)
	}
	if strings.HasSuffix(override, "/") || strings.HasSuffix(override, string(filepath.Separator)) {
		return filepath.Join(expanded, name), nil
	}
	if info, err := os.Stat(expanded); err == nil && info.IsDir() {
		return filepath.Join(expanded, name), nil
	}
	return expanded, nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// languageFromFileName recovers the language from names such as
// closecaption_english.txt when the source has no Language key.
func languageFromFileName(path string) string {
	name := strings.ToLower(stem(path))
	if !strings.HasPrefix(name, sourcePrefix) {
		return ""
	}
	return language.Canonical(strings.TrimPrefix(name, sourcePrefix))
}
