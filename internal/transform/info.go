package transform

import (
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/pdfcraft/pdfcraft/internal/domain"
)

// Info reads page count, encryption state, info-dictionary metadata and
// first-page dimensions from the document at path.
func Info(path string) (*domain.DocumentInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	ctx, err := api.ReadContextFile(path)
	if err != nil {
		// An encrypted document cannot be opened without its password;
		// report what we can instead of failing the request.
		if strings.Contains(strings.ToLower(err.Error()), "password") {
			return &domain.DocumentInfo{Encrypted: true, FileSize: st.Size()}, nil
		}
		return nil, err
	}

	info := &domain.DocumentInfo{
		Pages:     ctx.PageCount,
		Encrypted: ctx.XRefTable.Encrypt != nil,
		FileSize:  st.Size(),
	}

	if ctx.XRefTable.Info != nil {
		if d, err := ctx.DereferenceDict(*ctx.XRefTable.Info); err == nil {
			info.Metadata = domain.DocumentMetadata{
				Title:   infoString(ctx, d, "Title"),
				Author:  infoString(ctx, d, "Author"),
				Creator: infoString(ctx, d, "Creator"),
				Subject: infoString(ctx, d, "Subject"),
			}
		}
	}

	if dims, err := ctx.PageDims(); err == nil && len(dims) > 0 {
		info.Width = dims[0].Width
		info.Height = dims[0].Height
	}

	return info, nil
}

// infoString resolves one info-dictionary entry to a plain string,
// tolerating both literal and hex encodings. Anything unreadable is an
// empty string, never an error.
func infoString(ctx *model.Context, d types.Dict, key string) string {
	obj, found := d.Find(key)
	if !found {
		return ""
	}
	obj, err := ctx.Dereference(obj)
	if err != nil {
		return ""
	}
	switch s := obj.(type) {
	case types.StringLiteral:
		if v, err := types.StringLiteralToString(s); err == nil {
			return v
		}
	case types.HexLiteral:
		if v, err := types.HexLiteralToString(s); err == nil {
			return v
		}
	}
	return ""
}
