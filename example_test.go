package futsheet_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	futsheet "github.com/alnah/go-futsheet"
)

func ExampleRenderer_Render() {
	r, err := futsheet.NewRenderer()
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	result, err := r.Render(context.Background(), futsheet.Input{
		Text: "fn ok (T) -> Future<T, E>\n",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(strings.Contains(result.HTML, `href="https://docs.rs/futures/0.1.13/futures/future/fn.ok.html"`))
	// Output: true
}

func ExampleNewRenderer_options() {
	r, err := futsheet.NewRenderer(
		futsheet.WithVersion("0.2.0"),
		futsheet.WithTitle("Combinators"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	result, err := r.Render(context.Background(), futsheet.Input{Text: "fn lazy ()\n"})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(strings.Contains(result.HTML, "<title>Combinators</title>"))
	fmt.Println(strings.Contains(result.HTML, "/0.2.0/"))
	// Output:
	// true
	// true
}
