package vkboot

import (
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"
)

// loadShaderCode reads a pre-compiled SPIR-V binary by path and packs it
// into the 32-bit words the driver expects. A nil fsys reads from the host
// filesystem.
func loadShaderCode(fsys fs.FS, path string) ([]uint32, error) {
	var data []byte
	var err error
	if fsys != nil {
		data, err = fs.ReadFile(fsys, path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(ErrShaderUnreadable, "%s: %s", path, err.Error())
	}

	if len(data) == 0 || len(data)%4 != 0 {
		return nil, errors.Wrapf(ErrShaderUnreadable, "%s: %d bytes is not valid SPIR-V", path, len(data))
	}

	return bytesToBytecode(data), nil
}

// SPIR-V words are little-endian regardless of host order.
func bytesToBytecode(b []byte) []uint32 {
	byteCode := make([]uint32, len(b)/4)
	for i := 0; i < len(byteCode); i++ {
		byteIndex := i * 4
		byteCode[i] = 0
		byteCode[i] |= uint32(b[byteIndex])
		byteCode[i] |= uint32(b[byteIndex+1]) << 8
		byteCode[i] |= uint32(b[byteIndex+2]) << 16
		byteCode[i] |= uint32(b[byteIndex+3]) << 24
	}

	return byteCode
}
