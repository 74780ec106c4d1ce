package bellmanford

import (
	"strconv"
	"strings"
)

// PathArrow separates consecutive nodes in a formatted path.
const PathArrow = "-->"

// FormatPath renders path as "a-->b-->c". An empty path renders as "".
func FormatPath(path []int) string {
	var sb strings.Builder
	for i, v := range path {
		if i > 0 {
			sb.WriteString(PathArrow)
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// PathString formats the shortest path to dest, or returns the error text
// when no path can be reconstructed.
func (e *Engine) PathString(dest int) string {
	path, err := e.ShortestPath(dest)
	if err != nil {
		return err.Error()
	}

	return FormatPath(path)
}
