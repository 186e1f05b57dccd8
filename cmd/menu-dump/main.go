// Command menu-dump prints the seed catalog as JSON, one item per line.
// Handy for inspecting prices and wiring up front-end fixtures.
package main

import (
	"fmt"
	"os"

	"github.com/go-faster/jx"

	"github.com/hotbox-dev/pizzaservice/internal/domain/menu"
)

func main() {
	for _, it := range menu.New().Items() {
		var e jx.Encoder
		e.ObjStart()
		e.FieldStart("id")
		e.Str(it.ID())
		e.FieldStart("name")
		e.Str(it.Name())
		e.FieldStart("description")
		e.Str(it.Description())
		e.FieldStart("price")
		e.Str(it.Price().StringFixed(2))
		e.ObjEnd()

		if _, err := fmt.Fprintln(os.Stdout, e.String()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
