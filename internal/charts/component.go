package charts

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Component embeds a rendered chart document in an isolated iframe so the
// ECharts runtime and its globals never leak into the host page.
func Component(id, html, height string) templ.Component {
	if height == "" {
		height = defaultChartHeight
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<iframe id="chart-%s" class="chart-frame" title="%s" loading="lazy" style="width:100%%;height:%s;border:0" srcdoc="%s"></iframe>`,
			templ.EscapeString(id),
			templ.EscapeString(id),
			templ.EscapeString(height),
			templ.EscapeString(html),
		)
		return err
	})
}
