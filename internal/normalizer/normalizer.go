// Package normalizer assembles rewritten filename bodies back into full
// filenames for normalize-filename.
package normalizer

import "strings"

// SplitExtension splits a filename into its body and extension. The
// extension includes the leading dot. Names whose only dot is the leading
// one (dotfiles such as ".bashrc") have no extension.
func SplitExtension(name string) (body, ext string) {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return name, ""
	}
	return name[:idx], name[idx:]
}

// Assemble combines a rewritten body with the original extension. The
// body is trimmed of incidental surrounding whitespace. The extension is
// lowercased unless disabled or the path is a directory.
func Assemble(body, ext string, lowercaseExt, isDir bool) string {
	body = strings.TrimSpace(body)
	if lowercaseExt && !isDir {
		ext = strings.ToLower(ext)
	}
	return body + ext
}
