// renderer/renderer.go
package renderer

import (
	"github.com/josuecastillodev/ecommerce/app/configs"
	"github.com/unrolled/render"
)

// New returns the JSON renderer shared by every handler. Output is indented
// outside production.
func New(env configs.ENV) *render.Render {
	return render.New(render.Options{
		IndentJSON:   !env.IsProduction(),
		UnEscapeHTML: true,
	})
}
