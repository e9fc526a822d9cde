package krona_test

import (
	"errors"
	"fmt"
	"strings"

	krona "github.com/0xalexb/krona-config"
)

func ExampleValidate() {
	// A character sheet with a nested contact block.
	config := krona.Tree{
		"name":  "  Bo  ",
		"class": "rogue",
		"phone": krona.Tree{"number": "555-0100"},
	}

	schema := krona.Schema{
		{Key: "name", Transform: func(v any) any {
			return strings.TrimSpace(v.(string))
		}},
		{Key: "class", Required: true},
		{Key: "level", Default: 1},
		{Key: "phone", Schema: krona.Schema{
			{Key: "type", Default: "mobile"},
			{Key: "number", Required: true},
		}},
	}

	normalized, err := krona.Validate(config, schema)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(normalized["name"], normalized["level"], krona.Get(normalized, "phone.type"))
	// Output: Bo 1 mobile
}

func ExampleValidate_missingRequired() {
	schema := krona.Schema{
		{Key: "class", Required: true},
	}

	_, err := krona.Validate(krona.Tree{}, schema)

	fmt.Println(errors.Is(err, krona.ErrMissingRequiredValue))
	// Output: true
}

func ExampleGet() {
	tree := krona.Tree{
		"server": krona.Tree{
			"host": "localhost",
		},
	}

	fmt.Println(krona.Get(tree, "server.host"))
	fmt.Println(krona.Get(tree, "server.missing"))
	// Output:
	// localhost
	// <nil>
}

func ExampleLazy() {
	tree := krona.Tree{
		"token": krona.Lazy(func() any {
			// Commonly a secret lookup or an expensive computation;
			// runs on every retrieval.
			return "s3cr3t"
		}),
	}

	fmt.Println(krona.Get(tree, "token"))
	// Output: s3cr3t
}

func ExampleBuild() {
	built, err := krona.Build(
		map[string]any{"class": "rogue", "level": 5},
		[]string{"class", "level"},
		map[string]any{"status": "normal"},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(built["class"], built["level"], built["status"])
	// Output: rogue 5 normal
}

func ExampleProject() {
	projected := krona.Project(
		map[string]any{"a": 1, "b": 2, "c": 3},
		[]string{"a", "c", "z"},
		true,
	)

	fmt.Println(projected["a"], projected["c"], projected["z"])
	// Output: 1 3 <nil>
}
