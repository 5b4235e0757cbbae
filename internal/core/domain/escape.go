package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// unitNameEscaper applies the init system's path escaping: hyphens first, then separators.
// strings.Replacer scans left to right and never rescans replaced output, so the hyphens
// produced for separators are not escaped again.
var unitNameEscaper = strings.NewReplacer("-", `\x2d`, "/", "-")

// EscapeDevicePath converts an absolute device path into the unit-safe identifier the
// init system derives for it, e.g. "/dev/mapper/luks-nvme0n1p1" becomes
// `dev-mapper-luks\x2dnvme0n1p1`.
func EscapeDevicePath(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "/")
	if !ok {
		return "", zerr.With(zerr.Wrap(ErrDevicePathNotAbsolute, "cannot escape device path"), "path", path)
	}
	return unitNameEscaper.Replace(rest), nil
}
