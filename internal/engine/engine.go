package engine

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/phyten/todochk/internal/model"
	"github.com/phyten/todochk/internal/progress"
)

// ErrNotText is reported (at debug level only) for files that are not valid UTF-8.
var ErrNotText = errors.Base("not valid UTF-8 text")

// Run は opts.Root 以下を再帰的に走査し、読み込めた通常ファイルすべてから TODO を集めます。
//
// ディレクトリの走査順は辞書順で、FileID は読み込めたファイルに 1 から順に振られます。
// 開けないファイルや UTF-8 として読めないファイルは黙って読み飛ばします。
// エラーを返すのは起点そのものが読めない場合、除外パターンが不正な場合、
// ctx がキャンセルされた場合だけです。
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	root := opts.Root
	if root == "" {
		root = "."
	}
	for _, pattern := range opts.Excludes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid exclude pattern: %q", pattern)
		}
	}
	obs := opts.Observer
	if obs == nil {
		obs = progress.NoopObserver{}
	}
	logger := zerolog.Ctx(ctx)

	var findings []model.Finding
	fileID := 0
	snapshot := func(path string) progress.Snapshot {
		now := time.Now()
		return progress.Snapshot{
			Files:     fileID,
			Findings:  len(findings),
			Path:      path,
			StartedAt: start,
			UpdatedAt: now,
			Elapsed:   now.Sub(start),
		}
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return err
			}
			logger.Debug().Err(err).Str("path", path).Msg("skipping unreadable entry")
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path != root && excluded(root, path, opts.Excludes) {
			logger.Debug().Str("path", path).Msg("excluded")
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		contents, err := readText(path)
		if err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("skipping file")
			return nil
		}
		fileID++
		findings = append(findings, CollectWithOptions(fileID, path, contents, opts)...)
		obs.Publish(snapshot(path))
		return nil
	})
	obs.Done(snapshot(""))
	if err != nil {
		return nil, errors.Errorf("walk %s: %w", root, err)
	}

	logger.Debug().Int("files", fileID).Int("findings", len(findings)).Msg("scan complete")
	return &Result{
		Findings: findings,
		Files:    fileID,
		Elapsed:  time.Since(start),
	}, nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrNotText
	}
	return string(data), nil
}

func excluded(root, path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
