package engine

import (
	"strings"

	"github.com/phyten/todochk/internal/marker"
	"github.com/phyten/todochk/internal/model"
)

// Collect は 1 ファイル分の内容から TODO を抽出します。
//
// 行は "\n" だけで分割し（CR は残したまま）、1 始まりで数えます。
// 一致した行ごとに直前の行を文脈として記録し、1 行目では NoContext を入れます。
// 一致が無ければ空のスライスを返します。
func Collect(fileID int, fileName, contents string) []model.Finding {
	return CollectWithOptions(fileID, fileName, contents, Options{})
}

// CollectWithOptions is Collect with the per-line byte cap from opts applied.
func CollectWithOptions(fileID int, fileName, contents string, opts Options) []model.Finding {
	var out []model.Finding
	prev := ""
	for i, line := range strings.Split(contents, "\n") {
		n := i + 1
		if opts.MaxLineBytes <= 0 || len(line) <= opts.MaxLineBytes {
			if kind := marker.Kind(line); kind != model.MarkerNone {
				f := model.Finding{
					FileID:      fileID,
					FileName:    fileName,
					Line:        n,
					Text:        line,
					ContextLine: model.NoContext,
					Kind:        kind,
				}
				if n > 1 {
					f.ContextLine = n - 1
					f.Context = prev
				}
				out = append(out, f)
			}
		}
		prev = line
	}
	return out
}
