// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package doctext 从简历之类的文档里面提取纯文本
package doctext

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/lukasjarosch/go-docx"
)

var (
	ErrUnsupportedType = errors.New("不支持的文档类型")
	ErrEmptyDocument   = errors.New("文档没有可以提取的文本")
)

const documentXML = "word/document.xml"

type Type string

const (
	TypePDF  Type = ".pdf"
	TypeDOC  Type = ".doc"
	TypeDOCX Type = ".docx"
)

// TypeOf 根据文件名判断类型，未知类型返回空字符串
func TypeOf(filename string) Type {
	switch t := Type(strings.ToLower(filepath.Ext(filename))); t {
	case TypePDF, TypeDOC, TypeDOCX:
		return t
	default:
		return ""
	}
}

// Extract 提取文本。DOC 是二进制格式，目前不支持。
func Extract(filename string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch TypeOf(filename) {
	case TypePDF:
		text, err = extractPDF(data)
	case TypeDOCX:
		text, err = extractDOCX(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Ext(filename))
	}
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("解析 PDF 失败: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("读取 PDF 文本失败: %w", err)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("读取 PDF 文本失败: %w", err)
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.OpenBytes(data)
	if err != nil {
		return "", fmt.Errorf("解析 DOCX 失败: %w", err)
	}
	return documentXMLText(doc.GetFile(documentXML))
}

// documentXMLText 把 word/document.xml 里面的 <w:t> 拼起来，一个 <w:p> 一行
func documentXMLText(content []byte) (string, error) {
	if len(content) == 0 {
		return "", ErrEmptyDocument
	}
	dec := xml.NewDecoder(bytes.NewReader(content))
	var (
		sb     strings.Builder
		inText bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("解析 DOCX 内容失败: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteByte('\t')
			case "br":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
