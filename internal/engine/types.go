package engine

import (
	"time"

	"github.com/phyten/todochk/internal/model"
	"github.com/phyten/todochk/internal/progress"
)

// Options は走査オプション
type Options struct {
	Root         string            // 走査の起点（空なら "."）
	Excludes     []string          // doublestar 形式の除外パターン（Root からの相対パス）
	MaxLineBytes int               // これより長い行は評価しない（0=無制限）
	Observer     progress.Observer `json:"-"`
}

// Result は出力
type Result struct {
	Findings []model.Finding `json:"findings"`
	Files    int             `json:"files"`
	Elapsed  time.Duration   `json:"elapsed"`
}
