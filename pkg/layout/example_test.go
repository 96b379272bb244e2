package layout_test

import (
	"fmt"

	"github.com/matzehuels/vitrine/pkg/layout"
)

func ExampleEngine_Resolve() {
	eng := layout.Default()

	for _, width := range []int{1024, 768, 480} {
		s := eng.Resolve(width)
		fmt.Printf("%dpx: nav=%s hamburger=%s features=%s heading=%.2frem\n",
			width, s.NavDisplay, s.HamburgerDisplay, s.FeaturesDirection, s.HeadingScale)
	}

	// Output:
	// 1024px: nav=inline-list hamburger=hidden features=row heading=3.00rem
	// 768px: nav=hidden hamburger=visible features=column heading=3.00rem
	// 480px: nav=hidden hamburger=visible features=column heading=2.25rem
}
