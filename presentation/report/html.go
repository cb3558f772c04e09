package report

import (
	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"

	"github.com/secwatch/sirt/domain/entity"
)

// RenderHTML renders the markdown report as sanitized HTML. Incident fields
// are user-supplied, so the output is run through a UGC policy.
func RenderHTML(incident *entity.Incident) string {
	unsafe := blackfriday.Run([]byte(Render(incident)))
	return string(bluemonday.UGCPolicy().SanitizeBytes(unsafe))
}
