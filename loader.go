package elements

import (
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"
)

// Source is anything the Loader can resolve: built elements and parsed
// markup nodes both qualify.
type Source interface {
	TagName() string
	GetAttribute(name string) (string, bool)
	TextContent() string
}

// Loader returns the text a node refers to: the file named by its src
// attribute, or its inline text.
type Loader struct {
	FS     fs.FS
	Logger *slog.Logger
}

// Load reads src synchronously. Failures never escape: a read error is logged
// and yields "", as does an empty resource (logged as a warning).
func (l *Loader) Load(node Source) string {
	src, ok := node.GetAttribute("src")
	if !ok || src == "" {
		return node.TextContent()
	}
	data, err := l.read(src)
	if err != nil {
		l.Logger.Error("failed to load resource", "src", src, "tag", node.TagName(), "err", err)
		return ""
	}
	if len(data) == 0 {
		l.Logger.Warn("no data for resource", "src", src, "tag", node.TagName())
		return ""
	}
	return string(data)
}

func (l *Loader) read(src string) ([]byte, error) {
	f, err := l.FS.Open(fsPath(src))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// fsPath turns a markup path into an fs.FS path: slash separated, unrooted.
func fsPath(src string) string {
	p := path.Clean("/" + strings.ReplaceAll(src, "\\", "/"))
	return strings.TrimPrefix(p, "/")
}
