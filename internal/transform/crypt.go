package transform

import (
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Protect writes an AES-encrypted copy of the document. The same password
// is used for the user and owner roles, matching the single-password
// request surface.
func Protect(input, outPath, password string) error {
	c := conf()
	c.UserPW = password
	c.OwnerPW = password
	return api.EncryptFile(input, outPath, c)
}

// Unlock writes a decrypted copy of the document. An input that is not
// encrypted passes through unchanged. A wrong password surfaces as the
// library's authentication error and leaves outPath unwritten.
func Unlock(input, outPath, password string) error {
	if ctx, err := api.ReadContextFile(input); err == nil && ctx.XRefTable.Encrypt == nil {
		return copyFile(input, outPath)
	}
	c := conf()
	c.UserPW = password
	c.OwnerPW = password
	return api.DecryptFile(input, outPath, c)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dst)
	}
	return err
}
