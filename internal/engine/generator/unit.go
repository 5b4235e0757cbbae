package generator

import (
	"bytes"
	_ "embed"
	"text/template"

	"go.trai.ch/casgen/internal/core/domain"
	"go.trai.ch/zerr"
)

//go:embed unit.service.tmpl
var unitTemplateText string

var unitTemplate = template.Must(template.New("unit").Parse(unitTemplateText))

// unitData is the view of a Binding consumed by the unit template.
type unitData struct {
	Source           string
	Casadm           string
	PairTarget       string
	ActivationTarget string
	FSPreTarget      string
	CacheDevice      string
	CoreDevice       string
	CoreDevicePath   string
	CacheID          int
	CoreID           int
}

// RenderUnit produces the unit descriptor for b. source is the configuration file
// the unit was generated from and casadm the administration tool it invokes.
func RenderUnit(b domain.Binding, source, casadm string) ([]byte, error) {
	data := unitData{
		Source:           source,
		Casadm:           casadm,
		PairTarget:       b.PairTarget(),
		ActivationTarget: b.ActivationTarget(),
		FSPreTarget:      b.FSPreTarget(),
		CacheDevice:      b.CacheDevice,
		CoreDevice:       b.CoreDevice,
		CoreDevicePath:   b.Core.Device,
		CacheID:          b.Core.CacheID,
		CoreID:           b.Core.CoreID,
	}

	var buf bytes.Buffer
	if err := unitTemplate.Execute(&buf, data); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrUnitRenderFailed.Error()), "unit", b.UnitName())
	}
	return buf.Bytes(), nil
}
