package generator

import (
	"path"

	"go.trai.ch/casgen/internal/core/domain"
	"go.trai.ch/casgen/internal/core/ports"
)

// link places the unit into the requirement group of its volume device and of its
// activation target. Failures are logged and counted but never stop the run.
func (g *Generator) link(out ports.Output, b domain.Binding) (links []string, failures int) {
	for _, dir := range []string{b.DeviceRequiresDir(), b.TargetRequiresDir()} {
		if err := out.MkdirAll(dir); err != nil {
			g.logger.Error(err)
			failures++
		}

		linkPath := path.Join(dir, b.UnitName())
		if err := out.Symlink(b.LinkTarget(), linkPath); err != nil {
			g.logger.Error(err)
			failures++
			continue
		}
		links = append(links, linkPath)
	}
	return links, failures
}
