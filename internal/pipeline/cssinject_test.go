package pipeline_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-htxt/internal/pipeline"
)

// ---------------------------------------------------------------------------
// TestCSSInjection_InjectCSS - Style block placement
// ---------------------------------------------------------------------------

func TestCSSInjection_InjectCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		css  string
		want string
	}{
		{
			name: "empty CSS leaves HTML untouched",
			html: "<p>x</p>\n",
			css:  "",
			want: "<p>x</p>\n",
		},
		{
			name: "inserted on its own line before </head>",
			html: "<html>\n  <head>\n  </head>\n</html>\n",
			css:  "p{color:red}",
			want: "<html>\n  <head>\n    <style>p{color:red}</style>\n  </head>\n</html>\n",
		},
		{
			name: "inline </head> gets the block right before it",
			html: "<head><title>x</title></head>",
			css:  "a{}",
			want: "<head><title>x</title><style>a{}</style></head>",
		},
		{
			name: "after <body> when there is no head",
			html: "<body class=\"x\"><p>y</p></body>",
			css:  "b{}",
			want: "<body class=\"x\"><style>b{}</style><p>y</p></body>",
		},
		{
			name: "fragment gets the block prepended",
			html: "<p>x</p>\n",
			css:  "i{}",
			want: "<style>i{}</style>\n<p>x</p>\n",
		},
		{
			name: "closing style sequence is neutralized",
			html: "<p>x</p>\n",
			css:  "</style><script>",
			want: "<style><\\/style><script></style>\n<p>x</p>\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			injector := &pipeline.CSSInjection{}
			got := injector.InjectCSS(context.Background(), tt.html, tt.css)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("InjectCSS() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCSSInjection_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	injector := &pipeline.CSSInjection{}
	html := "<head></head>"
	if got := injector.InjectCSS(ctx, html, "p{}"); got != html {
		t.Errorf("InjectCSS() with canceled context = %q, want unchanged", got)
	}
}
