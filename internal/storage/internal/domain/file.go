package domain

import (
	"path/filepath"
	"strings"
)

type Kind uint

const (
	KindResume Kind = iota
	KindImage
	KindAttachment
)

func (k Kind) Dir() string {
	switch k {
	case KindResume:
		return "resumes"
	case KindImage:
		return "images"
	default:
		return "attachments"
	}
}

type File struct {
	// 原始文件名，只用来取扩展名
	Name        string
	ContentType string
	Data        []byte
	Kind        Kind
}

func (f File) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}
