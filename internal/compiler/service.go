package compiler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"vccd/internal/config"
	"vccd/internal/fileutil"
	"vccd/internal/history"
	"vccd/internal/language"
	"vccd/internal/logging"
	"vccd/internal/services"
	"vccd/internal/source"
	"vccd/internal/vccd"
)

const stageName = "compiler"

// Request describes a single compile.
type Request struct {
	// Source is the caption source file.
	Source string
	// Output overrides the configured output location. An existing directory
	// (or a path ending in a separator) receives the pattern-derived name.
	Output string
	// Force compiles even when skip_unchanged would skip the source.
	Force bool
}

// Result reports what a compile produced.
type Result struct {
	BuildID      string
	Source       string
	Output       string
	Language     string
	LanguageTag  string
	Encoding     string
	SourceSHA256 string
	OutputSHA256 string
	File         *vccd.File
	Skipped      bool
}

// Service compiles caption sources.
type Service struct {
	config  *config.Config
	history *history.Store
	logger  *slog.Logger
}

// ServiceOption customizes a Service.
type ServiceOption func(*Service)

// WithHistory records builds in store and enables skip_unchanged checks.
func WithHistory(store *history.Store) ServiceOption {
	return func(s *Service) {
		s.history = store
	}
}

// NewService constructs a compile service.
func NewService(cfg *config.Config, logger *slog.Logger, opts ...ServiceOption) *Service {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	svc := &Service{
		config: cfg,
		logger: logging.NewComponentLogger(logger, stageName),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Plan loads and encodes sourcePath without writing anything. The returned
// result carries the output path a compile would use.
func (s *Service) Plan(ctx context.Context, sourcePath string) (*Result, error) {
	return s.plan(ctx, sourcePath, "")
}

// CompileFile compiles req.Source and writes the encoded file.
func (s *Service) CompileFile(ctx context.Context, req Request) (*Result, error) {
	res, err := s.plan(ctx, req.Source, req.Output)
	if err != nil {
		return nil, err
	}

	res.BuildID = uuid.NewString()
	ctx = logging.WithBuildID(ctx, res.BuildID)
	logger := logging.WithContext(ctx, s.logger).With(
		logging.String(logging.FieldSource, res.Source),
		logging.String(logging.FieldOutput, res.Output),
	)

	if !req.Force && s.config.Compile.SkipUnchanged && s.history != nil {
		unchanged, err := s.history.Unchanged(ctx, res.Source, res.SourceSHA256, res.Output)
		if err != nil {
			logging.WarnWithContext(logger, "history lookup failed; compiling anyway", "history_lookup",
				logging.Error(err),
			)
		} else if unchanged {
			res.Skipped = true
			logger.Info("output unchanged; skipping",
				logging.String(logging.FieldEventType, "compile_skipped"),
			)
			return res, nil
		}
	}

	dir := filepath.Dir(res.Output)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, stageName, "prepare output", fmt.Sprintf("cannot create %s", dir), err)
	}
	if err := fileutil.CheckWritableDir(dir); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, stageName, "prepare output", "output directory is not writable", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := res.File.Bytes
	if err := fileutil.WriteFileAtomic(res.Output, data, 0o644); err != nil {
		if errors.Is(err, fileutil.ErrLocked) {
			return nil, services.Wrap(services.ErrConflict, stageName, "write output", "", err)
		}
		return nil, services.Wrap(services.ErrTransient, stageName, "write output", "", err)
	}
	res.OutputSHA256 = fileutil.SHA256Hex(data)

	if s.history != nil && s.config.Compile.History {
		build := &history.Build{
			ID:           res.BuildID,
			SourcePath:   res.Source,
			SourceSHA256: res.SourceSHA256,
			OutputPath:   res.Output,
			OutputSHA256: res.OutputSHA256,
			Language:     res.Language,
			LanguageTag:  res.LanguageTag,
			Entries:      len(res.File.Entries),
			Blocks:       int(res.File.Header.BlockCount),
			Size:         int64(res.File.Size()),
		}
		if err := s.history.Record(ctx, build); err != nil {
			logging.WarnWithContext(logger, "failed to record build history", "history_record",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "run 'vccd history clear' if the database is damaged"),
			)
		}
	}

	logger.Info("compiled captions",
		logging.String(logging.FieldEventType, "compile_complete"),
		logging.String("language", res.Language),
		logging.String("language_tag", res.LanguageTag),
		logging.Int("entries", len(res.File.Entries)),
		logging.Int("blocks", int(res.File.Header.BlockCount)),
		logging.Int("bytes", res.File.Size()),
	)
	return res, nil
}

func (s *Service) plan(ctx context.Context, sourcePath, output string) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(sourcePath) == "" {
		return nil, services.Wrap(services.ErrValidation, stageName, "load source", "source path is required", nil)
	}
	abs, err := filepath.Abs(sourcePath)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, stageName, "load source", "", err)
	}

	src, err := source.Load(abs, s.config.Compile.SourceEncoding)
	if err != nil {
		return nil, classifyLoadError(err)
	}
	lang := language.Canonical(src.Set.Language)
	if lang == "" {
		lang = languageFromFileName(abs)
	}
	src.Set.Language = lang

	s.logger.Debug("source loaded",
		logging.String(logging.FieldSource, abs),
		logging.String("encoding", src.Encoding),
		logging.Int("tokens", src.Set.Len()),
	)

	file, err := vccd.Build(src.Set)
	if err != nil {
		marker := services.ErrValidation
		if errors.Is(err, vccd.ErrLayout) {
			marker = services.ErrTransient
		}
		return nil, services.Wrap(marker, stageName, "encode", filepath.Base(abs), err)
	}

	out, err := s.outputPath(abs, output, lang)
	if err != nil {
		return nil, err
	}

	return &Result{
		Source:       abs,
		Output:       out,
		Language:     lang,
		LanguageTag:  language.Tag(lang).String(),
		Encoding:     src.Encoding,
		SourceSHA256: src.SHA256,
		File:         file,
	}, nil
}

func classifyLoadError(err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return services.Wrap(services.ErrNotFound, stageName, "load source", "", err)
	case errors.Is(err, source.ErrUnsupportedEncoding):
		return services.Wrap(services.ErrConfiguration, stageName, "load source", "compile.source_encoding", err)
	case errors.Is(err, os.ErrPermission):
		return services.Wrap(services.ErrTransient, stageName, "load source", "", err)
	default:
		return services.Wrap(services.ErrValidation, stageName, "load source", "", err)
	}
}
