package model

// NoContext は直前行が存在しない（1 行目で検出した）ことを表す番兵値です。
const NoContext = -1

// MarkerKind は検出したマーカーの表記（TODO / todo）を表します。
type MarkerKind string

const (
	MarkerNone      MarkerKind = ""
	MarkerCanonical MarkerKind = "TODO"
	MarkerInformal  MarkerKind = "todo"
)

// Finding は 1 件の TODO 検出結果を表します。
//
// FileID は走査順に割り当てられ、並べ替えにのみ使います。表示とグループ化には
// FileName を使います。ContextLine は Line-1 か NoContext のいずれかです。
type Finding struct {
	FileID      int        `json:"file_id"`
	FileName    string     `json:"file"`
	Line        int        `json:"line"`
	Text        string     `json:"text"`
	ContextLine int        `json:"context_line"`
	Context     string     `json:"context,omitempty"`
	Kind        MarkerKind `json:"kind"`
}

// HasContext reports whether the finding carries the preceding line.
func (f Finding) HasContext() bool {
	return f.ContextLine != NoContext
}
