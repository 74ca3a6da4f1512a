package lexlink_test

import (
	"fmt"

	"github.com/lexlink/lexlink"
	"github.com/lexlink/lexlink/connector"
)

func Example() {
	reg := lexlink.New(
		lexlink.WithExpectedConnectors(8),
		lexlink.WithParseOptions(&connector.Options{ShortLength: 6}),
	)
	defer reg.Close()

	// Dictionary load: register every connector the grammar mentions.
	for _, text := range []string{"Ss", "hSs", "Os", "MVp"} {
		if _, err := reg.Add(text); err != nil {
			panic(err)
		}
	}
	if err := reg.Finalize(); err != nil {
		panic(err)
	}

	// Per sentence: build instances and match in the search loop.
	pc, err := reg.NewParse()
	if err != nil {
		panic(err)
	}
	defer reg.EndParse(pc)

	subj := pc.NewConnector(reg.Lookup("Ss"))
	head := pc.NewConnector(reg.Lookup("hSs"))

	fmt.Println(subj.Match(head))
	fmt.Println(reg.Len(), reg.GroupCount())
	// Output:
	// true
	// 4 3
}
